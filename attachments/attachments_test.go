package attachments

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rpupo63/nexusconsult-backend/config"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	if in.Body != nil {
		b, _ := io.ReadAll(in.Body)
		f.body = string(b)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Upload(t *testing.T) {
	putter := &fakePutter{}
	u := NewS3Uploader(putter, "site-uploads", "contact-attachments")
	id := uuid.MustParse("6f1c1f3e-2d8b-4a57-9a52-0b7a0c1d2e3f")
	u.newID = func() uuid.UUID { return id }

	ref, err := u.Upload(context.Background(), "brief.pdf", "application/pdf", strings.NewReader("%PDF"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	wantKey := "contact-attachments/" + id.String() + "/brief.pdf"
	if ref != "s3://site-uploads/"+wantKey {
		t.Errorf("ref = %q", ref)
	}
	if aws.ToString(putter.input.Key) != wantKey || aws.ToString(putter.input.Bucket) != "site-uploads" {
		t.Errorf("put %s/%s", aws.ToString(putter.input.Bucket), aws.ToString(putter.input.Key))
	}
	if aws.ToString(putter.input.ContentType) != "application/pdf" || putter.body != "%PDF" {
		t.Errorf("content type %q body %q", aws.ToString(putter.input.ContentType), putter.body)
	}
}

func TestS3UploadError(t *testing.T) {
	u := NewS3Uploader(&fakePutter{err: errors.New("access denied")}, "b", "")
	if _, err := u.Upload(context.Background(), "a.txt", "", strings.NewReader("x")); err == nil || !strings.Contains(err.Error(), "access denied") {
		t.Fatalf("got %v, want access denied", err)
	}
}

func TestMockUploadIsDeterministic(t *testing.T) {
	m := MockUploader{Prefix: "contact-attachments"}
	a, err := m.Upload(context.Background(), "brief.pdf", "", strings.NewReader("same"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	b, _ := m.Upload(context.Background(), "brief.pdf", "", strings.NewReader("same"))
	c, _ := m.Upload(context.Background(), "brief.pdf", "", strings.NewReader("other"))
	if a != b {
		t.Errorf("same content gave %q and %q", a, b)
	}
	if a == c {
		t.Error("different content should give a different reference")
	}
	if !strings.HasPrefix(a, "mock://contact-attachments/") || !strings.HasSuffix(a, "/brief.pdf") {
		t.Errorf("ref = %q", a)
	}
}

func TestMockUploadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (MockUploader{}).Upload(ctx, "a", "", strings.NewReader("x")); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestSafeName(t *testing.T) {
	tests := map[string]string{
		"brief.pdf":             "brief.pdf",
		"../../etc/passwd":      "passwd",
		`C:\Users\me\cv 2.docx`: "cv_2.docx",
		"résumé.pdf":            "r_sum_.pdf",
		"...":                   "attachment",
		"":                      "attachment",
	}
	for in, want := range tests {
		if got := safeName(in); got != want {
			t.Errorf("safeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewWithoutBucketIsMock(t *testing.T) {
	u, err := New(context.Background(), config.Config{AttachmentPrefix: "x"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := u.(MockUploader); !ok {
		t.Errorf("got %T, want MockUploader", u)
	}
}
