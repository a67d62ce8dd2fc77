package media

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

type fakeHost struct {
	uploadCalls  int
	destroyCalls int
	lastParams   UploadParams
	lastPublicID string

	uploadResult  UploadResult
	destroyResult DestroyResult
	err           error
}

func (f *fakeHost) Upload(_ context.Context, _ io.Reader, params UploadParams) (UploadResult, error) {
	f.uploadCalls++
	f.lastParams = params
	if f.err != nil {
		return UploadResult{}, f.err
	}
	return f.uploadResult, nil
}

func (f *fakeHost) Destroy(_ context.Context, publicID string) (DestroyResult, error) {
	f.destroyCalls++
	f.lastPublicID = publicID
	if f.err != nil {
		return DestroyResult{}, f.err
	}
	return f.destroyResult, nil
}

func TestUploadRejectsMissingFileBeforeHostCall(t *testing.T) {
	host := &fakeHost{}
	svc := NewService(host, "")

	_, err := svc.Upload(context.Background(), nil, UploadParams{})
	if !errors.Is(err, ErrNoFile) {
		t.Fatalf("expected ErrNoFile, got %v", err)
	}
	if host.uploadCalls != 0 {
		t.Fatalf("host must not be called for a missing file, got %d calls", host.uploadCalls)
	}
}

func TestUploadAppliesDefaultFolder(t *testing.T) {
	host := &fakeHost{}
	svc := NewService(host, "")

	if _, err := svc.Upload(context.Background(), strings.NewReader("img"), UploadParams{FileName: "a.png"}); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if host.lastParams.Folder != DefaultFolder() {
		t.Fatalf("unexpected folder: got %q want %q", host.lastParams.Folder, DefaultFolder())
	}

	if _, err := svc.Upload(context.Background(), strings.NewReader("img"), UploadParams{Folder: "berita"}); err != nil {
		t.Fatalf("upload with folder: %v", err)
	}
	if host.lastParams.Folder != "berita" {
		t.Fatalf("explicit folder must win, got %q", host.lastParams.Folder)
	}
}

func TestUploadPassesHostDescriptorThrough(t *testing.T) {
	created := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)
	host := &fakeHost{uploadResult: UploadResult{
		PublicID:  "uploads/abc123",
		SecureURL: "https://res.host/uploads/abc123.png",
		Format:    "png",
		Bytes:     512,
		CreatedAt: created,
	}}
	svc := NewService(host, "uploads")

	got, err := svc.Upload(context.Background(), strings.NewReader("img"), UploadParams{})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if got != host.uploadResult {
		t.Fatalf("descriptor must pass through unchanged: got %+v", got)
	}
}

func TestUploadSurfacesHostFailure(t *testing.T) {
	host := &fakeHost{err: errors.New("quota exceeded")}
	svc := NewService(host, "uploads")

	_, err := svc.Upload(context.Background(), strings.NewReader("img"), UploadParams{})
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected host failure message to surface, got %v", err)
	}
}

func TestDestroyRejectsEmptyPublicIDBeforeHostCall(t *testing.T) {
	host := &fakeHost{}
	svc := NewService(host, "uploads")

	for _, publicID := range []string{"", "   "} {
		_, err := svc.Destroy(context.Background(), publicID)
		if !errors.Is(err, ErrNoPublicID) {
			t.Fatalf("publicID %q: expected ErrNoPublicID, got %v", publicID, err)
		}
	}
	if host.destroyCalls != 0 {
		t.Fatalf("host must not be called without a publicId, got %d calls", host.destroyCalls)
	}
}

func TestDestroyPassesResultThrough(t *testing.T) {
	host := &fakeHost{destroyResult: DestroyResult{Result: "ok"}}
	svc := NewService(host, "uploads")

	got, err := svc.Destroy(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if got.Result != "ok" {
		t.Fatalf("unexpected destroy result: %q", got.Result)
	}
	if host.lastPublicID != "abc123" {
		t.Fatalf("unexpected publicId forwarded: %q", host.lastPublicID)
	}
}
