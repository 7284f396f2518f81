package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const urlCacheSize = 512

// Client is the object store for attachment blobs.
type Client struct {
	s3        *s3.Client
	presigner *s3.PresignClient
	bucket    string
	public    string
	signTTL   time.Duration
	urlCache  *expirable.LRU[string, string]
}

// NewClient builds the S3 client. Static credentials plus a base endpoint
// override, so the same client works against any S3-compatible store.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load object store config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	ttl := cfg.URLCacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	// Signatures outlive the cache entries, so a URL handed out just before
	// eviction stays dereferenceable.
	signTTL := 2 * ttl

	return &Client{
		s3:        client,
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
		public:    strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		signTTL:   signTTL,
		urlCache:  expirable.NewLRU[string, string](urlCacheSize, nil, ttl),
	}, nil
}

// Upload persists one blob under key. An existing object under the same key is
// silently overwritten (upsert semantics).
func (c *Client) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := c.s3.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to put object %q: %w", key, err)
	}
	return nil
}

// PublicURL resolves key to a dereferenceable location. With a public base
// configured the bucket is world-readable and the URL is derived directly.
// Without one, a presigned GET URL is generated and cached; the cache expires
// before the signature does.
func (c *Client) PublicURL(ctx context.Context, key string) (string, error) {
	if c.public != "" {
		return fmt.Sprintf("%s/%s/%s", c.public, c.bucket, key), nil
	}

	if cached, ok := c.urlCache.Get(key); ok {
		return cached, nil
	}

	req, err := c.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(c.signTTL))
	if err != nil {
		return "", fmt.Errorf("failed to presign object %q: %w", key, err)
	}

	c.urlCache.Add(key, req.URL)
	return req.URL, nil
}
