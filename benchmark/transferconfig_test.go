package benchmark

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadConfig(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		size     int64
		want     TransferConfig
		wantErr  bool
	}{
		{
			name:     "default keeps manager defaults",
			strategy: StrategyDefault,
			size:     16 * mb,
			want:     TransferConfig{},
		},
		{
			name:     "high threshold doubles the file size",
			strategy: StrategyHighThreshold,
			size:     12 * mb,
			want:     TransferConfig{PartSize: 24 * mb},
		},
		{
			name:     "high threshold respects the S3 minimum",
			strategy: StrategyHighThreshold,
			size:     1 * mb,
			want:     TransferConfig{PartSize: manager.MinUploadPartSize},
		},
		{
			name:     "chunksize clamps to the minimum part size",
			strategy: StrategyChunkSize,
			size:     16 * mb,
			want:     TransferConfig{PartSize: manager.MinUploadPartSize, Concurrency: 12},
		},
		{
			name:     "accelerate only flips the endpoint",
			strategy: StrategyAccelerate,
			size:     16 * mb,
			want:     TransferConfig{Accelerate: true},
		},
		{
			name:     "download-only strategy is rejected",
			strategy: StrategySingleThread,
			size:     16 * mb,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := UploadConfig(tt.strategy, tt.size)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestDownloadConfig(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		threads  int
		want     TransferConfig
	}{
		{
			name:     "default keeps manager defaults",
			strategy: StrategyDefault,
			want:     TransferConfig{},
		},
		{
			name:     "chunksize uses one unit block and 12 workers",
			strategy: StrategyChunkSize,
			want:     TransferConfig{PartSize: 1 * mb, Concurrency: 12},
		},
		{
			name:     "single thread pins one worker",
			strategy: StrategySingleThread,
			want:     TransferConfig{Concurrency: 1},
		},
		{
			name:     "multi thread defaults to eight workers",
			strategy: StrategyMultiThread,
			want:     TransferConfig{Concurrency: DefaultThreads},
		},
		{
			name:     "multi thread honors the configured count",
			strategy: StrategyMultiThread,
			threads:  4,
			want:     TransferConfig{Concurrency: 4},
		},
		{
			name:     "high threshold never splits",
			strategy: StrategyHighThreshold,
			want:     TransferConfig{PartSize: 32 * mb},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := DownloadConfig(tt.strategy, 16*mb, tt.threads)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestTransferConfigValidate(t *testing.T) {
	assert.Error(t, TransferConfig{PartSize: -1}.Validate(false))
	assert.Error(t, TransferConfig{Concurrency: -1}.Validate(false))
	assert.Error(t, TransferConfig{PartSize: 1 * mb}.Validate(true), "upload part below S3 minimum")
	assert.NoError(t, TransferConfig{PartSize: 1 * mb}.Validate(false))
	assert.NoError(t, TransferConfig{}.Validate(true))
}

func TestParseStrategy(t *testing.T) {
	for _, s := range append(UploadStrategies(), StrategySingleThread, StrategyMultiThread) {
		parsed, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	_, err := ParseStrategy("turbo")
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeSerial, ModePerFile, ModePool} {
		parsed, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	_, err := ParseMode("warp")
	assert.Error(t, err)
}
