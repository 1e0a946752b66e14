package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultCacheControl = "max-age=3600"

// Client is an S3-backed Storage.
type Client struct {
	api      ObjectAPI
	uploader Uploader
	cfg      Config
}

// NewS3 builds a Client from cfg. Static credentials are used when both keys are set,
// otherwise the default AWS credential chain applies.
func NewS3(ctx context.Context, cfg Config) (*Client, error) {
	var opts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})

	return NewWithAPI(client, manager.NewUploader(client), cfg), nil
}

// NewWithAPI builds a Client over already constructed S3 primitives.
func NewWithAPI(api ObjectAPI, uploader Uploader, cfg Config) *Client {
	if cfg.CacheControl == "" {
		cfg.CacheControl = defaultCacheControl
	}
	return &Client{api: api, uploader: uploader, cfg: cfg}
}

// Put uploads in.Body and returns the object's public URL. Existing keys are never overwritten.
func (c *Client) Put(ctx context.Context, in PutInput) (string, error) {
	if in.Bucket == "" {
		return "", ErrEmptyBucket
	}
	if in.Key == "" {
		return "", ErrEmptyKey
	}
	if in.Body == nil {
		return "", ErrEmptyBody
	}

	input := &s3.PutObjectInput{
		Bucket:       aws.String(in.Bucket),
		Key:          aws.String(in.Key),
		Body:         in.Body,
		CacheControl: aws.String(c.cfg.CacheControl),
		IfNoneMatch:  aws.String("*"),
	}
	if in.ContentType != "" {
		input.ContentType = aws.String(in.ContentType)
	}

	if _, err := c.uploader.Upload(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload %s/%s: %w", in.Bucket, in.Key, err)
	}

	return c.PublicURL(in.Bucket, in.Key), nil
}

// Delete removes an object.
func (c *Client) Delete(ctx context.Context, bucket, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	_, err := c.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", bucket, key, err)
	}
	return nil
}

// PublicURL returns <PublicBaseURL>/<bucket>/<key>, falling back to the endpoint, then to
// the virtual-hosted AWS URL.
func (c *Client) PublicURL(bucket, key string) string {
	escaped := escapeKey(key)

	base := strings.TrimRight(c.cfg.PublicBaseURL, "/")
	if base == "" {
		base = strings.TrimRight(c.cfg.Endpoint, "/")
	}
	if base != "" {
		return fmt.Sprintf("%s/%s/%s", base, bucket, escaped)
	}

	region := c.cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, escaped)
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
