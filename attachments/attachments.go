// Package attachments stores files uploaded with the contact form.
package attachments

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rpupo63/nexusconsult-backend/config"
	"github.com/rs/zerolog/log"
)

// Uploader stores one file and returns the reference saved with the submission.
type Uploader interface {
	Upload(ctx context.Context, name, contentType string, body io.Reader) (string, error)
}

// New returns an S3 uploader when an attachment bucket is configured and a
// mock uploader otherwise.
func New(ctx context.Context, cfg config.Config) (Uploader, error) {
	if cfg.AttachmentBucket == "" {
		log.Warn().Msg("No attachment bucket configured, attachments are not stored")
		return MockUploader{Prefix: cfg.AttachmentPrefix}, nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AttachmentRegion))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	log.Info().Str("bucket", cfg.AttachmentBucket).Msg("Storing attachments in S3")
	return NewS3Uploader(s3.NewFromConfig(awsCfg), cfg.AttachmentBucket, cfg.AttachmentPrefix), nil
}

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Uploader struct {
	client objectPutter
	bucket string
	prefix string
	newID  func() uuid.UUID
}

func NewS3Uploader(client objectPutter, bucket, prefix string) *S3Uploader {
	return &S3Uploader{client: client, bucket: bucket, prefix: prefix, newID: uuid.New}
}

// Upload writes body under prefix/<random id>/<name> and returns its s3:// URI.
func (u *S3Uploader) Upload(ctx context.Context, name, contentType string, body io.Reader) (string, error) {
	key := path.Join(u.prefix, u.newID().String(), safeName(name))
	input := &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := u.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}
	return fmt.Sprintf("s3://%s/%s", u.bucket, key), nil
}

// MockUploader discards the file and returns a reference derived from its
// content, so the same file always yields the same reference.
type MockUploader struct {
	Prefix string
}

func (m MockUploader) Upload(ctx context.Context, name, _ string, body io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	content, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	id := uuid.NewSHA1(uuid.NameSpaceURL, content)
	return "mock://" + path.Join(m.Prefix, id.String(), safeName(name)), nil
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// safeName keeps the base name of an uploaded file with anything unusual replaced.
func safeName(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	name = strings.Trim(unsafeChars.ReplaceAllString(name, "_"), "._")
	if name == "" {
		return "attachment"
	}
	return name
}
