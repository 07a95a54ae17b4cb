package media

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildKey(t *testing.T) {
	s := &mediaService{}

	key, err := s.buildKey("hospital", "image/jpeg")
	if err != nil {
		t.Fatalf("buildKey: %v", err)
	}
	if !strings.HasPrefix(key, "media/hospital/") {
		t.Errorf("key = %q, want media/hospital/ prefix", key)
	}
	if !strings.HasSuffix(key, ".jpg") {
		t.Errorf("key = %q, want .jpg suffix", key)
	}

	// Empty entity falls back to the misc folder.
	key, err = s.buildKey("", "image/png")
	if err != nil {
		t.Fatalf("buildKey: %v", err)
	}
	if !strings.HasPrefix(key, "media/misc/") {
		t.Errorf("key = %q, want media/misc/ prefix", key)
	}
}

func TestBuildKeyRejectsUnknown(t *testing.T) {
	s := &mediaService{}

	if _, err := s.buildKey("hospital", "video/mp4"); !errors.Is(err, ErrUnsupportedContentType) {
		t.Errorf("content type error = %v, want ErrUnsupportedContentType", err)
	}
	if _, err := s.buildKey("spaceship", "image/png"); !errors.Is(err, ErrInvalidEntity) {
		t.Errorf("entity error = %v, want ErrInvalidEntity", err)
	}
}

func TestBuildKeyUnique(t *testing.T) {
	s := &mediaService{}
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		key, err := s.buildKey("doctor", "image/webp")
		if err != nil {
			t.Fatalf("buildKey: %v", err)
		}
		if seen[key] {
			t.Fatalf("duplicate key %q", key)
		}
		seen[key] = true
	}
}
