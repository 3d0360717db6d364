package aapt

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts raw aapt2 output bytes to a string. Consoles on Windows
// may emit GBK/CP936 instead of UTF-8, so the fallback chain is
// UTF-8 -> UTF-8 with BOM -> GBK, and as a last resort invalid sequences
// are dropped.
func Decode(data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)

	if utf8.Valid(data) {
		return string(data)
	}

	if decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(data); err == nil {
		return string(decoded)
	}

	return string(bytes.ToValidUTF8(data, nil))
}
