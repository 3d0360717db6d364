package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// FileSystemScanner implements Scanner for filesystem scanning
type FileSystemScanner struct{}

// NewFileSystemScanner creates a new filesystem scanner
func NewFileSystemScanner() *FileSystemScanner {
	return &FileSystemScanner{}
}

// Scan recursively scans a directory for APK files
func (s *FileSystemScanner) Scan(ctx context.Context, dir string) ([]ScannedAPK, error) {
	var apks []ScannedAPK

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Check context cancellation
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if info.IsDir() {
			return nil
		}

		ok, err := s.Detect(path)
		if err != nil {
			logrus.Warnf("Failed to probe %s: %v", path, err)
			return nil
		}
		if !ok {
			return nil
		}

		logrus.Debugf("Found APK: %s", path)

		apks = append(apks, ScannedAPK{
			Path: path,
			Size: info.Size(),
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}

	logrus.Infof("Found %d APK files in %s", len(apks), dir)
	return apks, nil
}

// Detect reports whether the file at path looks like an APK
func (s *FileSystemScanner) Detect(path string) (bool, error) {
	return DetectAPK(path)
}
