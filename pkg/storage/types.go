package storage

import "time"

// Config holds connection settings for the S3-compatible attachment bucket.
type Config struct {
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string // base under which uploaded objects are publicly served
	URLCacheTTL   time.Duration
}
