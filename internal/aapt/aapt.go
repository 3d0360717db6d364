// Package aapt locates and runs the aapt2 binary and hands back its badging
// report as decoded text.
package aapt

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/kaiwen/apkpeek/internal/models"
	"github.com/sirupsen/logrus"
)

var toolNames = []string{"aapt2", "aapt2.exe"}

// FindTool returns the path to aapt2. The directory holding the apkpeek
// executable is checked first so a bundled binary wins over the system one,
// then PATH.
func FindTool() (string, error) {
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		for _, name := range toolNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
	}

	if path, err := exec.LookPath("aapt2"); err == nil {
		return path, nil
	}

	return "", &models.PeekError{
		Type: models.ErrToolNotFound,
		Err:  fmt.Errorf("aapt2 not found next to the executable or in PATH"),
	}
}

// DumpBadging runs `aapt2 dump badging <apk>` and returns the decoded report.
// A non-zero exit is tolerated as long as the tool printed something; aapt2
// reports some recoverable conditions that way. Whichever of stdout or
// stderr is non-empty wins.
func DumpBadging(ctx context.Context, toolPath, apkPath string) (string, error) {
	cmd := exec.CommandContext(ctx, toolPath, "dump", "badging", apkPath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if runErr != nil {
		logrus.Debugf("aapt2 exited with error: %v", runErr)
	}

	out := stdout.Bytes()
	if len(bytes.TrimSpace(out)) == 0 {
		out = stderr.Bytes()
	}

	if len(bytes.TrimSpace(out)) == 0 {
		if runErr != nil {
			return "", &models.PeekError{
				Type: models.ErrToolExec,
				Path: apkPath,
				Err:  fmt.Errorf("aapt2 failed: %w", runErr),
			}
		}
		return "", &models.PeekError{
			Type: models.ErrEmptyOutput,
			Path: apkPath,
			Err:  fmt.Errorf("aapt2 produced no output"),
		}
	}

	return Decode(out), nil
}
