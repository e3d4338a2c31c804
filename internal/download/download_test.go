package download

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const fakeDriver = "#!/bin/sh\necho fake driver\n"

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestDownload(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, fakeDriver)
	}))
	defer s.Close()

	dir := t.TempDir()
	file := File{
		URL:  s.URL,
		Name: "driver.bin",
		Hash: sha256Hex(fakeDriver),
	}
	if err := Download(file, dir); err != nil {
		t.Fatalf("Download(%+v, %q) returned error: %v", file, dir, err)
	}

	got, err := os.ReadFile(filepath.Join(dir, file.Name))
	if err != nil {
		t.Fatalf("os.ReadFile(_) returned error: %v", err)
	}
	if string(got) != fakeDriver {
		t.Errorf("downloaded contents = %q, want %q", got, fakeDriver)
	}
}

func TestDownloadBadHash(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, fakeDriver)
	}))
	defer s.Close()

	file := File{
		URL:  s.URL,
		Name: "driver.bin",
		Hash: sha256Hex("something else entirely"),
	}
	if err := Download(file, t.TempDir()); err == nil {
		t.Error("Download(_) with a wrong checksum returned nil error, want mismatch")
	}
}

func TestDownloadSkipsExistingFile(t *testing.T) {
	// The server always fails, so the download only succeeds if the
	// existing on-disk copy is recognized by its hash.
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "should not be fetched", http.StatusInternalServerError)
	}))
	defer s.Close()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "driver.bin"), []byte(fakeDriver), 0o755); err != nil {
		t.Fatalf("os.WriteFile(_) returned error: %v", err)
	}

	file := File{
		URL:  s.URL,
		Name: "driver.bin",
		Hash: sha256Hex(fakeDriver),
	}
	if err := Download(file, dir); err != nil {
		t.Errorf("Download(_) with file already present returned error: %v", err)
	}
}

func TestDownloadServerError(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer s.Close()

	file := File{URL: s.URL, Name: "driver.bin"}
	if err := Download(file, t.TempDir()); err == nil {
		t.Error("Download(_) against a 404 returned nil error, want failure")
	}
}

func TestFilePath(t *testing.T) {
	tests := []struct {
		name string
		file File
		want string
	}{
		{"no directory", File{Name: "driver.bin"}, "driver.bin"},
		{"with directory", File{Name: "driver.bin", directory: "/tmp/drivers"}, "/tmp/drivers/driver.bin"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.file.Path(); got != tc.want {
				t.Errorf("Path() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNewHash(t *testing.T) {
	md5Size := newHash("md5").Size()
	if md5Size != 16 {
		t.Errorf(`newHash("md5").Size() = %d, want 16`, md5Size)
	}
	for _, hashType := range []string{"", "sha256", "SHA256"} {
		if got := newHash(hashType).Size(); got != 32 {
			t.Errorf("newHash(%q).Size() = %d, want 32", hashType, got)
		}
	}
}
