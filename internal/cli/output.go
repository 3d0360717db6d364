package cli

import (
	"fmt"

	"github.com/kaiwen/apkpeek/internal/models"
	"github.com/kaiwen/apkpeek/internal/report"
	"github.com/kaiwen/apkpeek/internal/sdkver"
	"github.com/kaiwen/apkpeek/internal/utils"
)

type renderOptions struct {
	JSON         bool
	ShowRaw      bool
	SDKTablePath string
}

// renderBadging turns a parsed record into the final report text.
func renderBadging(b *models.Badging, fileInfo *report.FileInfo, opts renderOptions) (string, error) {
	if opts.JSON {
		if !opts.ShowRaw {
			// Keep machine output compact unless the raw dump was asked for
			b.Raw = ""
		}
		data, err := report.JSON(b, fileInfo)
		if err != nil {
			return "", fmt.Errorf("failed to marshal report: %w", err)
		}
		return string(data) + "\n", nil
	}

	table, err := sdkver.Load(opts.SDKTablePath)
	if err != nil {
		return "", err
	}

	return report.Text(b, report.Options{
		SDK:     table,
		File:    fileInfo,
		ShowRaw: opts.ShowRaw,
	}), nil
}

// emit writes the report to a file when path is set, stdout otherwise.
func emit(out, path string) error {
	if path == "" {
		fmt.Print(out)
		return nil
	}

	if err := utils.WriteFile(path, []byte(out), 0644); err != nil {
		return &models.PeekError{
			Type: models.ErrFileOp,
			Path: path,
			Err:  fmt.Errorf("failed to write report: %w", err),
		}
	}
	return nil
}
