package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileDigest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	d, err := FileDigest(path)
	if err != nil {
		t.Fatalf("FileDigest failed: %v", err)
	}

	if d.Size != 5 {
		t.Errorf("Size = %d, want 5", d.Size)
	}
	if d.MD5 != "5d41402abc4b2a76b9719d911017c592" {
		t.Errorf("MD5 = %s", d.MD5)
	}
	if d.SHA1 != "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d" {
		t.Errorf("SHA1 = %s", d.SHA1)
	}
	if d.SHA256 != "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824" {
		t.Errorf("SHA256 = %s", d.SHA256)
	}
}

func TestFileDigestMissingFile(t *testing.T) {
	if _, err := FileDigest(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("FileDigest should fail for a missing file")
	}
}
