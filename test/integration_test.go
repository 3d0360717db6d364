package test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestCLI builds the apkpeek binary and runs it against a saved badging dump
func TestCLI(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI integration test in short mode")
	}

	projectRoot, err := getProjectRoot()
	if err != nil {
		t.Fatalf("Failed to find project root: %v", err)
	}

	t.Log("Building apkpeek binary...")
	binPath := filepath.Join(t.TempDir(), "apkpeek")
	build := exec.Command("go", "build", "-o", binPath, "./cmd/apkpeek")
	build.Dir = projectRoot
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build apkpeek: %v\n%s", err, out)
	}

	fixture := filepath.Join(projectRoot, "test", "fixtures", "badging.txt")

	t.Run("ParseText", func(t *testing.T) {
		out, err := exec.Command(binPath, "parse", fixture).CombinedOutput()
		if err != nil {
			t.Fatalf("parse failed: %v\n%s", err, out)
		}

		report := string(out)
		for _, want := range []string{
			"示例应用",
			"com.tencent.example",
			"8.0.49 / 2160",
			"min:23(6.0 Marshmallow)",
			"target:33(13 Tiramisu)",
			"com.tencent.example.ui.LauncherUI",
			"arm64-v8a, armeabi-v7a",
			"android.permission.CAMERA",
			"locales (10):",
			"supports-any-density: true",
		} {
			if !strings.Contains(report, want) {
				t.Errorf("report missing %q\n%s", want, report)
			}
		}
	})

	t.Run("ParseJSON", func(t *testing.T) {
		out, err := exec.Command(binPath, "parse", "--json", fixture).Output()
		if err != nil {
			t.Fatalf("parse --json failed: %v", err)
		}

		var doc struct {
			Badging struct {
				PackageName   string            `json:"package_name"`
				MinSdk        string            `json:"min_sdk"`
				Permissions   []string          `json:"permissions"`
				Icons         map[string]string `json:"icons"`
				Architectures []string          `json:"architectures"`
			} `json:"badging"`
		}
		if err := json.Unmarshal(out, &doc); err != nil {
			t.Fatalf("invalid JSON output: %v\n%s", err, out)
		}

		if doc.Badging.PackageName != "com.tencent.example" {
			t.Errorf("package_name = %q", doc.Badging.PackageName)
		}
		if doc.Badging.MinSdk != "23" {
			t.Errorf("min_sdk = %q", doc.Badging.MinSdk)
		}
		if len(doc.Badging.Permissions) != 4 {
			t.Errorf("got %d permissions, want 4", len(doc.Badging.Permissions))
		}
		if len(doc.Badging.Icons) != 6 {
			t.Errorf("got %d icons, want 6", len(doc.Badging.Icons))
		}
		if len(doc.Badging.Architectures) != 2 {
			t.Errorf("got %d architectures, want 2", len(doc.Badging.Architectures))
		}
	})

	t.Run("ParseStdin", func(t *testing.T) {
		data, err := os.ReadFile(fixture)
		if err != nil {
			t.Fatalf("Failed to read fixture: %v", err)
		}

		cmd := exec.Command(binPath, "parse")
		cmd.Stdin = strings.NewReader(string(data))
		out, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("parse from stdin failed: %v\n%s", err, out)
		}
		if !strings.Contains(string(out), "com.tencent.example") {
			t.Errorf("stdin parse missing package name\n%s", out)
		}
	})

	t.Run("InspectMissingFile", func(t *testing.T) {
		out, err := exec.Command(binPath, "inspect", filepath.Join(t.TempDir(), "nope.apk")).CombinedOutput()
		if err == nil {
			t.Errorf("inspect of a missing file should fail\n%s", out)
		}
	})

	t.Run("WriteReportToFile", func(t *testing.T) {
		dst := filepath.Join(t.TempDir(), "out", "report.txt")
		if out, err := exec.Command(binPath, "parse", "-o", dst, fixture).CombinedOutput(); err != nil {
			t.Fatalf("parse -o failed: %v\n%s", err, out)
		}

		data, err := os.ReadFile(dst)
		if err != nil {
			t.Fatalf("report file not written: %v", err)
		}
		if !strings.Contains(string(data), "com.tencent.example") {
			t.Error("written report is missing the package name")
		}
	})
}

// getProjectRoot walks up from the working directory until go.mod is found
func getProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
