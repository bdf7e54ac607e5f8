package upload

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config addresses an S3-compatible bucket such as MinIO. PublicBaseURL
// prefixes public page URLs and defaults to Endpoint.
type S3Config struct {
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

// S3PutAPI is the part of *s3.Client used by S3Store.
type S3PutAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var loadDefaultAWSConfig = config.LoadDefaultConfig

type S3Store struct {
	api     S3PutAPI
	bucket  string
	baseURL string
}

// NewS3Store builds an S3 client with static credentials and path-style
// addressing.
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	c := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	base := cfg.PublicBaseURL
	if base == "" {
		base = cfg.Endpoint
	}
	return NewS3StoreWithAPI(c, cfg.Bucket, base), nil
}

func NewS3StoreWithAPI(api S3PutAPI, bucket, publicBaseURL string) *S3Store {
	return &S3Store{api: api, bucket: bucket, baseURL: strings.TrimRight(publicBaseURL, "/")}
}

func (s *S3Store) Store(ctx context.Context, path string, data []byte) error {
	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(path),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentTypeFor(path)),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", path, err)
	}
	return nil
}

// PublicURL is {base}/{bucket}/{path} with each segment escaped.
func (s *S3Store) PublicURL(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.baseURL + "/" + url.PathEscape(s.bucket) + "/" + strings.Join(segments, "/")
}
