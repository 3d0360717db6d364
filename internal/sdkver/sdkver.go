// Package sdkver maps Android API levels to human-readable version labels.
package sdkver

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/kaiwen/apkpeek/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:embed android_sdk_versions.json
var embeddedTable []byte

// entry mirrors one object of the android_sdk_versions.json reference table.
type entry struct {
	APILevel int    `json:"apiLevel"`
	Version  string `json:"version"`
	Codename string `json:"codename"`
}

// Table maps an API level (as a string, the way aapt2 reports it) to a
// display label like "9 Pie" or "14 UpsideDownCake".
type Table map[string]string

// Load returns the SDK version table. An empty path selects the embedded
// reference table; otherwise the file at path is read in the same format.
func Load(path string) (Table, error) {
	data := embeddedTable
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, &models.PeekError{
				Type: models.ErrFileOp,
				Path: path,
				Err:  fmt.Errorf("failed to read SDK table: %w", err),
			}
		}
		data = fileData
	}

	table, err := parseTable(data)
	if err != nil {
		return nil, &models.PeekError{
			Type: models.ErrFileOp,
			Path: path,
			Err:  fmt.Errorf("failed to parse SDK table: %w", err),
		}
	}
	return table, nil
}

func parseTable(data []byte) (Table, error) {
	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	table := make(Table, len(entries))
	for _, e := range entries {
		version := strings.TrimPrefix(e.Version, "Android ")
		codename := strings.ReplaceAll(e.Codename, " ", "")

		label := version
		if codename != "" {
			label = version + " " + codename
		}
		table[strconv.Itoa(e.APILevel)] = label
	}
	return table, nil
}

// Format renders an API level as "<level>(<label>)" when the level is known,
// the bare level when it is not, and "?" for absent input.
func (t Table) Format(level string) string {
	if level == "" || level == "?" {
		return "?"
	}
	if label, ok := t[level]; ok {
		return fmt.Sprintf("%s(%s)", level, label)
	}
	return level
}
