package s3

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/windoze95/cookiemice-api/internal/config"
)

// Object addresses a single S3 object.
type Object struct {
	Bucket string
	Key    string
}

// String returns the s3://bucket/key form.
func (o Object) String() string {
	return "s3://" + o.Bucket + "/" + o.Key
}

// ParseURL parses s3://bucket/key. ok is false for anything else.
func ParseURL(raw string) (obj Object, ok bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "s3" || u.Host == "" {
		return Object{}, false
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return Object{}, false
	}
	return Object{Bucket: u.Host, Key: key}, true
}

// newS3Client creates a new S3 client from the app config.
// When AWS access key and secret are provided, static credentials are used;
// otherwise the default credential chain is preserved (IAM role, instance
// profile, etc.) so ECS/EC2 task roles work without explicit keys.
func newS3Client(ctx context.Context, cfg *config.Config) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.EnvVars.AWSRegion != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.EnvVars.AWSRegion))
	}

	if cfg.EnvVars.AWSAccessKeyID != "" && cfg.EnvVars.AWSSecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.EnvVars.AWSAccessKeyID,
			cfg.EnvVars.AWSSecretAccessKey,
			"",
		)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %v", err)
	}
	return s3.NewFromConfig(awsCfg), nil
}

// DownloadObject reads an entire object into memory.
func DownloadObject(ctx context.Context, cfg *config.Config, obj Object) ([]byte, error) {
	client, err := newS3Client(ctx, cfg)
	if err != nil {
		return nil, err
	}

	downloader := manager.NewDownloader(client)

	buf := manager.NewWriteAtBuffer(nil)
	_, err = downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(obj.Bucket),
		Key:    aws.String(obj.Key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %v", obj, err)
	}

	return buf.Bytes(), nil
}

// UploadObject writes data to obj and returns the object's location URL.
func UploadObject(ctx context.Context, cfg *config.Config, obj Object, data []byte, contentType string) (string, error) {
	client, err := newS3Client(ctx, cfg)
	if err != nil {
		return "", err
	}

	uploader := manager.NewUploader(client)

	result, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(obj.Bucket),
		Key:         aws.String(obj.Key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %v", err)
	}

	return result.Location, nil
}
