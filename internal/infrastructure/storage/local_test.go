package storage

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"healthconnect/config"
)

func TestSaveAndOpen(t *testing.T) {
	store, err := NewLocalFileStore(config.StorageConfig{Root: t.TempDir()})
	if err != nil {
		t.Fatalf("NewLocalFileStore: %v", err)
	}

	content := []byte("lab results")
	storedPath, err := store.Save(BucketMedicalRecords, "report.pdf", content)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(storedPath, "report.pdf") {
		t.Errorf("stored path %q should keep the original filename", storedPath)
	}

	got, err := store.Open(BucketMedicalRecords, storedPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("Open returned %q, want %q", got, content)
	}
}

func TestSaveAvoidsCollisions(t *testing.T) {
	store, err := NewLocalFileStore(config.StorageConfig{Root: t.TempDir()})
	if err != nil {
		t.Fatalf("NewLocalFileStore: %v", err)
	}

	first, err := store.Save(BucketPrescriptions, "scan.png", []byte("one"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Stored names are timestamped to the millisecond
	time.Sleep(2 * time.Millisecond)

	second, err := store.Save(BucketPrescriptions, "scan.png", []byte("two"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if first == second {
		t.Fatalf("both uploads stored as %q", first)
	}

	got, err := store.Open(BucketPrescriptions, first)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(got, []byte("one")) {
		t.Error("second upload with the same name clobbered the first")
	}
}

func TestOpenStripsPathTraversal(t *testing.T) {
	store, err := NewLocalFileStore(config.StorageConfig{Root: t.TempDir()})
	if err != nil {
		t.Fatalf("NewLocalFileStore: %v", err)
	}

	if _, err := store.Open(BucketMedicalRecords, "../../etc/passwd"); err == nil {
		t.Fatal("expected traversal path to fail")
	}
}
