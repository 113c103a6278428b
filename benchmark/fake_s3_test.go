package benchmark

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// fakeS3 implements StorageClient in memory, capturing how the
// transfer manager drives the API: whether an upload went through a
// single PutObject or the multipart path, and how downloads were
// split into ranged GETs.
type fakeS3 struct {
	mu sync.Mutex

	putCalls      int
	putBytes      int64
	createCalls   int
	partCalls     int
	partBytes     int64
	completeCalls int
	abortCalls    int
	getCalls      int

	object []byte // payload served to GetObject
	err    error  // injected failure, returned by every call
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	n, err := io.Copy(io.Discard, in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.putCalls++
	f.putBytes += n
	f.mu.Unlock()
	return &s3.PutObjectOutput{ETag: aws.String(`"fake-etag"`)}, nil
}

func (f *fakeS3) CreateMultipartUpload(ctx context.Context, in *s3.CreateMultipartUploadInput, _ ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	f.createCalls++
	f.mu.Unlock()
	return &s3.CreateMultipartUploadOutput{UploadId: aws.String("fake-upload")}, nil
}

func (f *fakeS3) UploadPart(ctx context.Context, in *s3.UploadPartInput, _ ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	n, err := io.Copy(io.Discard, in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.partCalls++
	f.partBytes += n
	f.mu.Unlock()
	etag := fmt.Sprintf(`"part-%d"`, aws.ToInt32(in.PartNumber))
	return &s3.UploadPartOutput{ETag: aws.String(etag)}, nil
}

func (f *fakeS3) CompleteMultipartUpload(ctx context.Context, in *s3.CompleteMultipartUploadInput, _ ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	f.completeCalls++
	f.mu.Unlock()
	return &s3.CompleteMultipartUploadOutput{ETag: aws.String(`"fake-etag"`)}, nil
}

func (f *fakeS3) AbortMultipartUpload(ctx context.Context, in *s3.AbortMultipartUploadInput, _ ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	f.mu.Lock()
	f.abortCalls++
	f.mu.Unlock()
	return &s3.AbortMultipartUploadOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	total := int64(len(f.object))
	start, end := int64(0), total-1
	if in.Range != nil {
		if _, err := fmt.Sscanf(aws.ToString(in.Range), "bytes=%d-%d", &start, &end); err != nil {
			return nil, fmt.Errorf("fake: bad range %q: %w", aws.ToString(in.Range), err)
		}
	}
	if start >= total {
		return nil, fmt.Errorf("fake: range start %d past object size %d", start, total)
	}
	if end >= total {
		end = total - 1
	}
	chunk := f.object[start : end+1]

	f.mu.Lock()
	f.getCalls++
	f.mu.Unlock()

	return &s3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(chunk)),
		ContentLength: aws.Int64(int64(len(chunk))),
		ContentRange:  aws.String(fmt.Sprintf("bytes %d-%d/%d", start, end, total)),
		ETag:          aws.String(`"fake-etag"`),
	}, nil
}
