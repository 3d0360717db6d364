package aapt

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/kaiwen/apkpeek/internal/models"
)

// writeFakeTool drops an executable shell script named aapt2 into dir.
func writeFakeTool(t *testing.T, dir, script string) string {
	t.Helper()
	path := filepath.Join(dir, "aapt2")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("Failed to write fake tool: %v", err)
	}
	return path
}

func TestFindToolFromPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake tool requires a POSIX shell")
	}

	dir := t.TempDir()
	want := writeFakeTool(t, dir, "exit 0\n")
	t.Setenv("PATH", dir)

	got, err := FindTool()
	if err != nil {
		t.Fatalf("FindTool failed: %v", err)
	}
	if got != want {
		t.Errorf("FindTool = %q, want %q", got, want)
	}
}

func TestFindToolMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := FindTool()
	if err == nil {
		t.Fatal("FindTool should fail when aapt2 is nowhere to be found")
	}

	var perr *models.PeekError
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *models.PeekError", err)
	}
	if perr.Type != models.ErrToolNotFound {
		t.Errorf("error type = %s, want ToolNotFound", perr.Type)
	}
}

func TestDumpBadgingCapturesStdout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake tool requires a POSIX shell")
	}

	tool := writeFakeTool(t, t.TempDir(), "echo \"package: name='com.example' versionCode='1' versionName='1.0'\"\n")

	out, err := DumpBadging(context.Background(), tool, "dummy.apk")
	if err != nil {
		t.Fatalf("DumpBadging failed: %v", err)
	}
	if !strings.Contains(out, "name='com.example'") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestDumpBadgingToleratesNonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake tool requires a POSIX shell")
	}

	tool := writeFakeTool(t, t.TempDir(), "echo \"W err\" 1>&2\nexit 1\n")

	out, err := DumpBadging(context.Background(), tool, "dummy.apk")
	if err != nil {
		t.Fatalf("DumpBadging should not fail when the tool printed something: %v", err)
	}
	if !strings.Contains(out, "W err") {
		t.Errorf("stderr output should be used when stdout is empty, got %q", out)
	}
}

func TestDumpBadgingEmptyOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake tool requires a POSIX shell")
	}

	tool := writeFakeTool(t, t.TempDir(), "exit 1\n")

	_, err := DumpBadging(context.Background(), tool, "dummy.apk")
	if err == nil {
		t.Fatal("DumpBadging should fail on empty output")
	}

	var perr *models.PeekError
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *models.PeekError", err)
	}
	if perr.Type != models.ErrToolExec {
		t.Errorf("error type = %s, want ToolExec", perr.Type)
	}
}
