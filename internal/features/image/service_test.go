package image

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"go.uber.org/zap"
)

type fakeStorage struct {
	key         string
	data        []byte
	contentType string
}

func (f *fakeStorage) Put(_ context.Context, key string, data []byte, contentType string) error {
	f.key = key
	f.data = data
	f.contentType = contentType
	return nil
}

func (f *fakeStorage) PublicURL(key string) string {
	return "https://cdn.example/" + key
}

func TestUpload(t *testing.T) {
	storage := &fakeStorage{}
	svc := NewImageService(storage, zap.NewNop())

	raw := []byte("fake png bytes")
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	url, err := svc.Upload(context.Background(), dataURL)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if !strings.HasPrefix(url, "https://cdn.example/cards/") {
		t.Errorf("url = %q, want cdn prefix with cards/ key", url)
	}
	if !strings.HasSuffix(storage.key, ".png") {
		t.Errorf("key = %q, want .png suffix", storage.key)
	}
	if storage.contentType != "image/png" {
		t.Errorf("contentType = %q, want image/png", storage.contentType)
	}
	if string(storage.data) != string(raw) {
		t.Errorf("stored bytes do not round-trip the payload")
	}
}

func TestUploadRejectsInvalidPayloads(t *testing.T) {
	tests := []struct {
		name    string
		dataURL string
	}{
		{"not a data url", "https://example.com/cat.png"},
		{"wrong media type", "data:text/plain;base64,aGVsbG8="},
		{"disallowed extension", "data:image/svg+xml;base64,aGVsbG8="},
		{"missing base64 marker", "data:image/png,aGVsbG8="},
		{"invalid base64", "data:image/png;base64,!!!"},
		{"empty payload", "data:image/png;base64,"},
	}

	svc := NewImageService(&fakeStorage{}, zap.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Upload(context.Background(), tt.dataURL); err == nil {
				t.Errorf("Upload(%q) succeeded, want error", tt.dataURL)
			}
		})
	}
}
