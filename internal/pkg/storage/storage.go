package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/codeverse-africa/whingan-core/internal/config"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Uploader pushes media files to the configured S3-compatible bucket and
// returns the public URL the rest of the system stores.
type Uploader struct {
	client       *s3.Client
	bucket       string
	region       string
	endpoint     string
	customDomain string
}

// NewUploader builds an uploader from config. Returns nil when the bucket is
// not configured, so callers can treat uploads as disabled.
func NewUploader(opts config.S3Options) (*Uploader, error) {
	if strings.TrimSpace(opts.Bucket) == "" {
		return nil, nil
	}
	if opts.AccessKeyID == "" || opts.SecretAccessKey == "" {
		return nil, fmt.Errorf("incomplete s3 config: access key id and secret are required")
	}

	endpoint := strings.TrimSuffix(strings.TrimSpace(opts.Endpoint), "/")
	if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	awsCfg := aws.Config{
		Region:      opts.Region,
		Credentials: credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &Uploader{
		client:       client,
		bucket:       opts.Bucket,
		region:       opts.Region,
		endpoint:     endpoint,
		customDomain: strings.TrimRight(strings.TrimSpace(opts.CustomDomain), "/"),
	}, nil
}

// Upload stores payload under a timestamped object key derived from kind and
// filename, and returns the public URL.
func (u *Uploader) Upload(ctx context.Context, kind, filename string, payload []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(filename))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := buildObjectKey(kind, filename)
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return u.publicURL(key), nil
}

func (u *Uploader) publicURL(key string) string {
	if u.customDomain != "" {
		return u.customDomain + "/" + key
	}
	if u.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", u.endpoint, u.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}

func buildObjectKey(kind, filename string) string {
	base := reUnsafe.ReplaceAllString(filepath.Base(filename), "-")
	base = strings.Trim(base, "-")
	if base == "" || base == "." {
		base = "file"
	}
	now := time.Now().UTC()
	return fmt.Sprintf("%s/%s/%d-%s", kind, now.Format("2006/01"), now.UnixMilli(), base)
}
