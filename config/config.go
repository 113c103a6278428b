package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// LoadAWSConfig loads AWS configuration from the default credential
// chain, with the tuned HTTP client installed. region overrides the
// chain's region when non-empty.
func LoadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithHTTPClient(newHTTPClient()),
	}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}

// NewStandardClient builds the S3 client bound to the standard
// regional endpoint.
func NewStandardClient(cfg aws.Config) *s3.Client {
	return s3.NewFromConfig(cfg)
}

// NewAcceleratedClient builds the S3 client bound to the transfer
// acceleration endpoint. The bucket must have acceleration enabled or
// requests through this client fail.
func NewAcceleratedClient(cfg aws.Config) *s3.Client {
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UseAccelerate = true
	})
}
