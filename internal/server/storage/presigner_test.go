package storage

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Endpoint:  "http://127.0.0.1:9000",
		Region:    "us-east-1",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    "exam-files",
	}
}

func TestNewPresigner_AppliesOptions(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		require.NotNil(t, lo.Credentials)
		creds, err := lo.Credentials.Retrieve(ctx)
		require.NoError(t, err)
		assert.Equal(t, "minioadmin", creds.AccessKeyID)
		return aws.Config{}, nil
	}

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}

	p, err := NewPresigner(context.Background(), testConfig())
	require.NoError(t, err)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)
	assert.Equal(t, 15*time.Minute, p.cfg.Expires)
}

func TestNewPresigner_ConfigError(t *testing.T) {
	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })
	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no region")
	}

	_, err := NewPresigner(context.Background(), testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aws config: no region")
}

func TestPresignPut(t *testing.T) {
	p, err := NewPresigner(context.Background(), testConfig())
	require.NoError(t, err)

	orig := presignPutObject
	t.Cleanup(func() { presignPutObject = orig })

	presignPutObject = func(_ *s3.PresignClient, _ context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		assert.Equal(t, "exam-files", aws.ToString(in.Bucket))
		assert.Equal(t, "exam-files/u1/e1/page-1.pdf", aws.ToString(in.Key))
		assert.Equal(t, "application/pdf", aws.ToString(in.ContentType))

		var po s3.PresignOptions
		for _, fn := range optFns {
			fn(&po)
		}
		assert.Equal(t, 15*time.Minute, po.Expires)
		return &v4.PresignedHTTPRequest{URL: "http://127.0.0.1:9000/exam-files/x?X-Amz-Signature=abc123&X-Amz-Expires=900"}, nil
	}

	up, err := p.PresignPut(context.Background(), "exam-files/u1/e1/page-1.pdf", "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "abc123", up.Token)
	assert.Equal(t, "exam-files/u1/e1/page-1.pdf", up.Key)

	presignPutObject = func(*s3.PresignClient, context.Context, *s3.PutObjectInput, ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("signer down")
	}
	_, err = p.PresignPut(context.Background(), "k", "")
	require.ErrorContains(t, err, "presign put: signer down")
}

func TestPublicURL(t *testing.T) {
	cfg := testConfig()
	p := &Presigner{cfg: cfg}
	assert.Equal(t, "http://127.0.0.1:9000/exam-files/2025/01/a%20b.pdf", p.PublicURL("2025/01/a b.pdf"))

	cfg.PublicBaseURL = "https://cdn.example.com/"
	p = &Presigner{cfg: cfg}
	u := p.PublicURL("/exam-files/u1/e1/page-1.pdf")
	assert.Equal(t, "https://cdn.example.com/exam-files/exam-files/u1/e1/page-1.pdf", u)
	_, err := url.Parse(u)
	require.NoError(t, err)
}
