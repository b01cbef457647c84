package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"sns-app/pkg/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

type Client struct {
	s3Client  s3iface.S3API
	endpoint  string
	region    string
	useSSL    bool
	publicURL string
}

func NewClient(cfg *config.Config) (*Client, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.AWSRegion),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}

	// Support MinIO and other S3 compatible stores
	useSSL := cfg.S3UseSSL != "false"
	if cfg.AWSEndpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.AWSEndpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		if !useSSL {
			awsConfig.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &Client{
		s3Client:  s3.New(sess),
		endpoint:  cfg.AWSEndpoint,
		region:    cfg.AWSRegion,
		useSSL:    useSSL,
		publicURL: strings.TrimRight(cfg.StoragePublicURL, "/"),
	}, nil
}

// EnsureBucket creates the bucket when HeadBucket reports it missing.
func (c *Client) EnsureBucket(ctx context.Context, bucket string) error {
	_, err := c.s3Client.HeadBucketWithContext(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err == nil {
		return nil
	}

	if _, err := c.s3Client.CreateBucketWithContext(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return nil
}

// Upload stores data under bucket/key and returns the object path.
func (c *Client) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error) {
	_, err := c.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}
	return key, nil
}

// PublicURL builds the browser-facing URL of an uploaded object.
func (c *Client) PublicURL(bucket, path string) string {
	path = strings.TrimLeft(path, "/")

	if c.publicURL != "" {
		return fmt.Sprintf("%s/%s/%s", c.publicURL, bucket, path)
	}

	// MinIO URL format
	if c.endpoint != "" && !strings.Contains(c.endpoint, "amazonaws.com") {
		protocol := "http"
		if c.useSSL {
			protocol = "https"
		}
		endpoint := strings.TrimPrefix(c.endpoint, "http://")
		endpoint = strings.TrimPrefix(endpoint, "https://")
		return fmt.Sprintf("%s://%s/%s/%s", protocol, strings.TrimRight(endpoint, "/"), bucket, path)
	}

	// AWS S3 URL format
	region := c.region
	if region == "" {
		region = "us-east-1"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, path)
}
