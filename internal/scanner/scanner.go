package scanner

import "context"

// ScannedAPK represents an APK file found during scanning
type ScannedAPK struct {
	Path string
	Size int64
}

// Scanner interface for discovering APK files
type Scanner interface {
	// Scan recursively scans a directory for APK files
	Scan(ctx context.Context, dir string) ([]ScannedAPK, error)

	// Detect reports whether the file at path looks like an APK
	Detect(path string) (bool, error)
}
