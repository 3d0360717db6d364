// Package report renders a Badging record for humans or machines. Anything
// about how many fields to surface, and in which order, lives here; the
// parser collects everything.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/kaiwen/apkpeek/internal/models"
	"github.com/kaiwen/apkpeek/internal/sdkver"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Locales whose labels are always surfaced first in the text report.
var preferredLabelLocales = []string{"zh-CN", "zh-HK", "zh-TW", "en-GB", "en-US", "ja", "ko"}

// Beyond the preferred locales, at most this many extra labels are shown.
// The full map is always available in JSON output.
const maxExtraLabels = 5

// FileInfo describes the inspected APK file itself
type FileInfo struct {
	Path   string `json:"path"`
	Size   int64  `json:"size"`
	MD5    string `json:"md5,omitempty"`
	SHA1   string `json:"sha1,omitempty"`
	SHA256 string `json:"sha256,omitempty"`
}

// Options controls text rendering
type Options struct {
	SDK     sdkver.Table
	File    *FileInfo
	ShowRaw bool
}

// Document is the JSON output shape
type Document struct {
	File    *FileInfo       `json:"file,omitempty"`
	Badging *models.Badging `json:"badging"`
}

// JSON renders a badging record (plus optional file info) as indented JSON.
func JSON(b *models.Badging, file *FileInfo) ([]byte, error) {
	return json.MarshalIndent(&Document{File: file, Badging: b}, "", "  ")
}

// DocumentsJSON renders a scan result as one indented JSON array.
func DocumentsJSON(docs []*Document) ([]byte, error) {
	if docs == nil {
		docs = []*Document{}
	}
	return json.MarshalIndent(docs, "", "  ")
}

// Text renders the full human-readable report.
func Text(b *models.Badging, opts Options) string {
	var sb strings.Builder

	writeRow(&sb, "App name", orNone(b.AppName))
	writeRow(&sb, "Package", orNone(b.PackageName))
	writeRow(&sb, "Version", orNone(strings.Trim(b.VersionName+" / "+b.VersionCode, " /")))
	writeRow(&sb, "SDK", fmt.Sprintf("min:%s  target:%s  compile:%s",
		opts.SDK.Format(b.MinSdk),
		opts.SDK.Format(b.TargetSdk),
		opts.SDK.Format(b.CompileSdkVersion)))
	writeRow(&sb, "Launchable", orNone(b.LaunchableActivity))
	writeRow(&sb, "Native code", joinOrNone(b.Architectures))

	if opts.File != nil {
		sb.WriteString("\n[file]\n")
		writeRow(&sb, "path", opts.File.Path)
		writeRow(&sb, "size", strconv.FormatInt(opts.File.Size, 10))
		writeRow(&sb, "md5", opts.File.MD5)
		writeRow(&sb, "sha1", opts.File.SHA1)
		writeRow(&sb, "sha256", opts.File.SHA256)
	}

	sb.WriteString("\n[uses-permission]\n")
	writeList(&sb, b.Permissions)

	sb.WriteString("\n[uses-feature]\n")
	writeList(&sb, b.Features)
	if len(b.ImpliedFeatures) > 0 {
		sb.WriteString("\n[uses-implied-feature]\n")
		writeList(&sb, b.ImpliedFeatures)
	}

	sb.WriteString("\n[locales/screens/densities]\n")
	fmt.Fprintf(&sb, "locales (%d): %s\n", len(b.Locales), joinOrNone(b.Locales))
	fmt.Fprintf(&sb, "screens: %s\n", joinOrNone(b.SupportsScreens))
	fmt.Fprintf(&sb, "densities: %s\n", joinOrNone(b.Densities))
	if b.SupportsAnyDensity != "" {
		fmt.Fprintf(&sb, "supports-any-density: %s\n", b.SupportsAnyDensity)
	}

	other := otherSection(b)
	if other != "" {
		sb.WriteString("\n[other]\n")
		sb.WriteString(other)
	}

	if opts.ShowRaw && b.Raw != "" {
		sb.WriteString("\n[raw aapt2 output]\n")
		sb.WriteString(b.Raw)
		sb.WriteString("\n")
	}

	return sb.String()
}

// Summary renders a one-line digest, used by directory scans.
func Summary(b *models.Badging) string {
	version := strings.Trim(b.VersionName+"/"+b.VersionCode, "/")
	if version == "" {
		version = "?"
	}
	return fmt.Sprintf("%s\t%s\t%s", orNone(b.PackageName), version, orNone(b.AppName))
}

func otherSection(b *models.Badging) string {
	var sb strings.Builder

	if b.PlatformBuildVersionName != "" {
		fmt.Fprintf(&sb, "platformBuildVersionName: %s\n", b.PlatformBuildVersionName)
	}
	if b.PlatformBuildVersionCode != "" {
		fmt.Fprintf(&sb, "platformBuildVersionCode: %s\n", b.PlatformBuildVersionCode)
	}
	if b.CompileSdkCodename != "" {
		fmt.Fprintf(&sb, "compileSdkVersionCodename: %s\n", b.CompileSdkCodename)
	}

	if labels := labelLines(b.AppNameLabels); len(labels) > 0 {
		sb.WriteString("\n[application labels]\n")
		for _, line := range labels {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	if len(b.Icons) > 0 {
		sb.WriteString("\n[icons by density]\n")
		for _, density := range sortedDensities(b.Icons) {
			fmt.Fprintf(&sb, "%s: %s\n", density, b.Icons[density])
		}
	}

	return sb.String()
}

// labelLines picks which per-locale labels to surface: preferred locales
// first, then up to maxExtraLabels others in alphabetical order.
func labelLines(labels map[string]string) []string {
	var lines []string
	shown := map[string]bool{}

	for _, loc := range preferredLabelLocales {
		if labels[loc] != "" {
			lines = append(lines, loc+": "+labels[loc])
			shown[loc] = true
		}
	}

	rest := make([]string, 0, len(labels))
	for loc := range labels {
		if !shown[loc] && labels[loc] != "" {
			rest = append(rest, loc)
		}
	}
	sort.Strings(rest)

	for _, loc := range rest {
		if len(shown) >= maxExtraLabels+len(preferredLabelLocales) {
			break
		}
		lines = append(lines, loc+": "+labels[loc])
		shown[loc] = true
	}

	return lines
}

// sortedDensities orders icon map keys numerically
func sortedDensities(icons map[string]string) []string {
	densities := make([]string, 0, len(icons))
	for d := range icons {
		densities = append(densities, d)
	}
	sort.Slice(densities, func(i, j int) bool {
		a, _ := strconv.Atoi(densities[i])
		b, _ := strconv.Atoi(densities[j])
		return a < b
	})
	return densities
}

func writeRow(sb *strings.Builder, key, value string) {
	fmt.Fprintf(sb, "%-13s %s\n", key+":", value)
}

func writeList(sb *strings.Builder, items []string) {
	if len(items) == 0 {
		sb.WriteString("(none)\n")
		return
	}
	for _, item := range items {
		sb.WriteString(item)
		sb.WriteString("\n")
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
