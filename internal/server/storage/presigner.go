// Package storage issues presigned upload URLs for an S3-compatible bucket
// and resolves public URLs of stored objects.
package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

type Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	// PublicBaseURL prefixes public object URLs; Endpoint is used when empty.
	PublicBaseURL string
	// Expires bounds presigned URL lifetime; 15 minutes when zero.
	Expires time.Duration
}

// PresignedUpload is a one-shot PUT target. Token is the request signature,
// returned to clients as an opaque upload token.
type PresignedUpload struct {
	URL   string
	Key   string
	Token string
}

type Presigner struct {
	cfg    Config
	client *s3.PresignClient
}

// NewPresigner builds the presign client with static credentials and
// path-style addressing, as MinIO expects.
func NewPresigner(ctx context.Context, cfg Config) (*Presigner, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	if cfg.Expires <= 0 {
		cfg.Expires = 15 * time.Minute
	}
	return &Presigner{cfg: cfg, client: newS3PresignClient(client)}, nil
}

func (p *Presigner) PresignPut(ctx context.Context, key, contentType string) (*PresignedUpload, error) {
	in := &s3.PutObjectInput{
		Bucket: aws.String(p.cfg.Bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	req, err := presignPutObject(p.client, ctx, in, s3.WithPresignExpires(p.cfg.Expires))
	if err != nil {
		return nil, fmt.Errorf("presign put: %w", err)
	}

	return &PresignedUpload{URL: req.URL, Key: key, Token: signatureOf(req.URL)}, nil
}

func signatureOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Query().Get("X-Amz-Signature")
}

// PublicURL returns base/bucket/key with each key segment escaped.
func (p *Presigner) PublicURL(key string) string {
	base := p.cfg.PublicBaseURL
	if base == "" {
		base = p.cfg.Endpoint
	}
	segs := strings.Split(strings.TrimLeft(key, "/"), "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.TrimRight(base, "/") + "/" + p.cfg.Bucket + "/" + strings.Join(segs, "/")
}
