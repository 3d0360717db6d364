package scanner

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
)

// APK files are zip archives
var zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}

// DetectAPK reports whether path is an APK: the .apk extension plus the zip
// magic bytes. Extension alone is not trusted; a renamed text file should
// not reach aapt2.
func DetectAPK(path string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(path), ".apk") {
		return false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	header := make([]byte, len(zipMagic))
	n, err := f.Read(header)
	if err != nil && n == 0 {
		return false, err
	}

	return bytes.HasPrefix(header[:n], zipMagic), nil
}
