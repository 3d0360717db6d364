package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/kaiwen/apkpeek/internal/aapt"
	"github.com/kaiwen/apkpeek/internal/badging"
	"github.com/kaiwen/apkpeek/internal/models"
	"github.com/kaiwen/apkpeek/internal/report"
	"github.com/kaiwen/apkpeek/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	var config models.InspectConfig

	cmd := &cobra.Command{
		Use:   "inspect <apk>",
		Short: "Dump and summarize the metadata of an APK file",
		Long: `Runs aapt2 dump badging against the given APK and prints a
structured summary of the extracted metadata.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.APKPath = args[0]
			if err := validateInspectConfig(&config); err != nil {
				return err
			}

			logrus.Debugf("Configuration: %+v", config)
			return runInspect(cmd.Context(), &config)
		},
	}

	cmd.Flags().StringVar(&config.AaptPath, "aapt", "", "Path to the aapt2 binary (default: auto-discover)")
	cmd.Flags().StringVar(&config.SDKTablePath, "sdk-table", "", "Path to an SDK version table JSON file (default: embedded)")
	cmd.Flags().BoolVar(&config.JSONOutput, "json", false, "Emit the report as JSON")
	cmd.Flags().BoolVar(&config.ShowRaw, "raw", false, "Include the raw aapt2 output in the report")
	cmd.Flags().StringVarP(&config.OutputPath, "output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().DurationVar(&config.Timeout, "timeout", 30*time.Second, "Timeout for the aapt2 subprocess")

	return cmd
}

func validateInspectConfig(config *models.InspectConfig) error {
	info, err := os.Stat(config.APKPath)
	if err != nil {
		return &models.PeekError{
			Type: models.ErrFileOp,
			Path: config.APKPath,
			Err:  fmt.Errorf("cannot access APK: %w", err),
		}
	}
	if info.IsDir() {
		return &models.PeekError{
			Type: models.ErrInvalidConfig,
			Path: config.APKPath,
			Err:  fmt.Errorf("path is a directory, expected an APK file (did you mean scan?)"),
		}
	}
	return nil
}

func runInspect(ctx context.Context, config *models.InspectConfig) error {
	text, err := dumpBadging(ctx, config.AaptPath, config.APKPath, config.Timeout)
	if err != nil {
		return err
	}

	b := badging.Parse(text)
	logrus.Debugf("Parsed %d permissions, %d features, %d locales",
		len(b.Permissions), len(b.Features), len(b.Locales))

	fileInfo, err := fileDigestInfo(config.APKPath)
	if err != nil {
		logrus.Warnf("Failed to checksum %s: %v", config.APKPath, err)
	}

	out, err := renderBadging(b, fileInfo, renderOptions{
		JSON:         config.JSONOutput,
		ShowRaw:      config.ShowRaw,
		SDKTablePath: config.SDKTablePath,
	})
	if err != nil {
		return err
	}

	return emit(out, config.OutputPath)
}

// dumpBadging resolves the aapt2 binary and runs it with a timeout.
func dumpBadging(ctx context.Context, toolPath, apkPath string, timeout time.Duration) (string, error) {
	if toolPath == "" {
		found, err := aapt.FindTool()
		if err != nil {
			return "", err
		}
		toolPath = found
	}
	logrus.Debugf("Using aapt2: %s", toolPath)

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	return aapt.DumpBadging(ctx, toolPath, apkPath)
}

func fileDigestInfo(path string) (*report.FileInfo, error) {
	digest, err := utils.FileDigest(path)
	if err != nil {
		return nil, err
	}
	return &report.FileInfo{
		Path:   path,
		Size:   digest.Size,
		MD5:    digest.MD5,
		SHA1:   digest.SHA1,
		SHA256: digest.SHA256,
	}, nil
}
