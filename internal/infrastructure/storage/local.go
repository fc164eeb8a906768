package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"healthconnect/config"
)

// Bucket names for record attachments
const (
	BucketMedicalRecords = "emr-files"
	BucketPrescriptions  = "prescription-files"
)

// FileStore persists uploaded attachments. The backend service owns the real
// object store; this local implementation keeps the same bucket/path surface.
type FileStore interface {
	// Save writes the bytes under the bucket and returns the stored path.
	Save(bucket, filename string, data []byte) (string, error)
	// Open reads a stored attachment back.
	Open(bucket, storedPath string) ([]byte, error)
}

type localFileStore struct {
	root string
}

// NewLocalFileStore creates the storage root and bucket directories.
func NewLocalFileStore(cfg config.StorageConfig) (FileStore, error) {
	for _, bucket := range []string{BucketMedicalRecords, BucketPrescriptions} {
		if err := os.MkdirAll(filepath.Join(cfg.Root, bucket), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage bucket %s: %w", bucket, err)
		}
	}

	logrus.Infof("File storage ready at %s", cfg.Root)

	return &localFileStore{root: cfg.Root}, nil
}

func (s *localFileStore) Save(bucket, filename string, data []byte) (string, error) {
	// Prefix with a timestamp so repeated uploads of the same name never
	// clobber each other, mirroring the portal's upload naming.
	storedPath := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitize(filename))

	fullPath := filepath.Join(s.root, bucket, storedPath)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to store %s/%s: %w", bucket, storedPath, err)
	}

	return storedPath, nil
}

func (s *localFileStore) Open(bucket, storedPath string) ([]byte, error) {
	// Stored paths are server-generated, but uploads are untrusted input.
	cleaned := filepath.Base(filepath.Clean(storedPath))
	data, err := os.ReadFile(filepath.Join(s.root, bucket, cleaned))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", bucket, cleaned, err)
	}
	return data, nil
}

func sanitize(filename string) string {
	base := filepath.Base(filename)
	return strings.ReplaceAll(base, " ", "_")
}
