package storage

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config holds S3-compatible object storage settings.
type Config struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	ForcePathStyle  bool
	PublicBaseURL   string
	CacheControl    string
}

// PutInput describes a single object upload.
type PutInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
}

// Uploader is the subset of manager.Uploader used by Client.
type Uploader interface {
	Upload(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// ObjectAPI is the subset of *s3.Client used by Client.
type ObjectAPI interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Storage uploads objects and returns their public URLs.
type Storage interface {
	Put(ctx context.Context, in PutInput) (string, error)
	Delete(ctx context.Context, bucket, key string) error
	PublicURL(bucket, key string) string
}
