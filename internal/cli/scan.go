package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kaiwen/apkpeek/internal/badging"
	"github.com/kaiwen/apkpeek/internal/models"
	"github.com/kaiwen/apkpeek/internal/report"
	"github.com/kaiwen/apkpeek/internal/scanner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command
func NewScanCmd() *cobra.Command {
	var config models.ScanConfig

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Inspect every APK under a directory",
		Long: `Walks a directory tree, detects APK files by magic bytes, runs
aapt2 dump badging on each and prints a one-line summary per package
(or a JSON array with --json). APKs that fail to dump are skipped with
a warning.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.InputDir = "."
			if len(args) == 1 {
				config.InputDir = args[0]
			}
			return runScan(cmd.Context(), &config)
		},
	}

	cmd.Flags().StringVar(&config.AaptPath, "aapt", "", "Path to the aapt2 binary (default: auto-discover)")
	cmd.Flags().StringVar(&config.SDKTablePath, "sdk-table", "", "Path to an SDK version table JSON file (default: embedded)")
	cmd.Flags().BoolVar(&config.JSONOutput, "json", false, "Emit one JSON array with every parsed record")
	cmd.Flags().DurationVar(&config.Timeout, "timeout", 30*time.Second, "Per-APK timeout for the aapt2 subprocess")

	return cmd
}

func runScan(ctx context.Context, config *models.ScanConfig) error {
	logrus.Infof("Scanning directory: %s", config.InputDir)
	sc := scanner.NewFileSystemScanner()
	apks, err := sc.Scan(ctx, config.InputDir)
	if err != nil {
		return &models.PeekError{
			Type: models.ErrFileOp,
			Path: config.InputDir,
			Err:  fmt.Errorf("failed to scan directory: %w", err),
		}
	}

	if len(apks) == 0 {
		logrus.Warn("No APK files found")
		return nil
	}

	var docs []*report.Document
	var lines []string

	for _, apk := range apks {
		logrus.Debugf("Inspecting %s", apk.Path)

		text, err := dumpBadging(ctx, config.AaptPath, apk.Path, config.Timeout)
		if err != nil {
			logrus.Warnf("Failed to dump %s: %v", apk.Path, err)
			continue
		}

		b := badging.Parse(text)

		if config.JSONOutput {
			b.Raw = ""
			docs = append(docs, &report.Document{
				File:    &report.FileInfo{Path: apk.Path, Size: apk.Size},
				Badging: b,
			})
		} else {
			lines = append(lines, apk.Path+"\t"+report.Summary(b))
		}
	}

	if config.JSONOutput {
		data, err := report.DocumentsJSON(docs)
		if err != nil {
			return fmt.Errorf("failed to marshal scan result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(strings.Join(lines, "\n"))
	return nil
}
