// Package badging parses the human-readable report printed by
// `aapt2 dump badging`. The format is not contractually stable across aapt2
// versions, so every field is extracted independently and an unmatched
// pattern simply leaves the field at its zero value.
package badging

import (
	"regexp"
	"strings"

	"github.com/kaiwen/apkpeek/internal/models"
)

var (
	// package: name='X' versionCode='Y' versionName='Z' ...
	rePackage = regexp.MustCompile(`package:\s+name='([^']+)'\s+versionCode='([^']+)'\s+versionName='([^']+)'`)

	// Attribute form: key='value'
	rePlatformName    = regexp.MustCompile(`platformBuildVersionName='([^']+)'`)
	rePlatformCode    = regexp.MustCompile(`platformBuildVersionCode='([^']+)'`)
	reCompileSdk      = regexp.MustCompile(`compileSdkVersion='([^']+)'`)
	reCompileCodename = regexp.MustCompile(`compileSdkVersionCodename='([^']+)'`)

	// Colon form: key:'value'. aapt2 prints the min/target SDK this way,
	// not as node attributes; the two forms must not be conflated.
	reMinSdk    = regexp.MustCompile(`minSdkVersion:'([^']+)'`)
	reTargetSdk = regexp.MustCompile(`targetSdkVersion:'([^']+)'`)

	reLocaleLabel  = regexp.MustCompile(`application-label-([\w-]+):'([^']*)'`)
	reGenericLabel = regexp.MustCompile(`application-label:'([^']*)'`)
	reAppNodeLabel = regexp.MustCompile(`application:\s+label='([^']*)'`)

	// Optional trailing label='...' on the same line is ignored
	reLaunchable = regexp.MustCompile(`launchable-activity:\s+name='([^']*)'`)

	rePermission     = regexp.MustCompile(`uses-permission:\s+name='([^']+)'`)
	reFeature        = regexp.MustCompile(`uses-feature:\s+name='([^']+)'`)
	reImpliedFeature = regexp.MustCompile(`uses-implied-feature:\s+name='([^']+)'`)

	reScreens    = regexp.MustCompile(`supports-screens:\s+((?:'[^']+'\s*)+)`)
	reAnyDensity = regexp.MustCompile(`supports-any-density:\s+'([^']+)'`)
	reDensities  = regexp.MustCompile(`densities:\s+((?:'[^']+'\s*)+)`)
	reLocales    = regexp.MustCompile(`locales:\s+((?:'[^']+'\s*)+)`)

	reIcon = regexp.MustCompile(`application-icon-([0-9]+):'([^']+)'`)

	reQuoted = regexp.MustCompile(`'([^']+)'`)
)

// Locale priority for the resolved display name. The original tool prefers
// a Chinese label when one exists.
var preferredNameLocales = []string{"zh-CN", "zh-HK", "zh-TW"}

// Parse extracts a Badging record from a dump badging report. It is total:
// malformed or truncated input yields a sparser record, never an error.
func Parse(text string) *models.Badging {
	b := &models.Badging{
		AppNameLabels:   map[string]string{},
		Permissions:     []string{},
		Features:        []string{},
		ImpliedFeatures: []string{},
		SupportsScreens: []string{},
		Densities:       []string{},
		Locales:         []string{},
		Icons:           map[string]string{},
		Architectures:   []string{},
		Raw:             strings.TrimSpace(text),
	}

	if m := rePackage.FindStringSubmatch(text); m != nil {
		b.PackageName = m[1]
		b.VersionCode = m[2]
		b.VersionName = m[3]
	}

	b.PlatformBuildVersionName = firstGroup(rePlatformName, text)
	b.PlatformBuildVersionCode = firstGroup(rePlatformCode, text)
	b.CompileSdkVersion = firstGroup(reCompileSdk, text)
	b.CompileSdkCodename = firstGroup(reCompileCodename, text)
	b.MinSdk = firstGroup(reMinSdk, text)
	b.TargetSdk = firstGroup(reTargetSdk, text)

	for _, m := range reLocaleLabel.FindAllStringSubmatch(text, -1) {
		b.AppNameLabels[m[1]] = m[2]
	}
	b.AppName = resolveAppName(b.AppNameLabels, firstGroup(reGenericLabel, text), firstGroup(reAppNodeLabel, text))

	b.LaunchableActivity = firstGroup(reLaunchable, text)

	b.Permissions = allGroups(rePermission, text)
	b.Features = allGroups(reFeature, text)
	b.ImpliedFeatures = allGroups(reImpliedFeature, text)

	b.SupportsScreens = quotedRun(reScreens, text)
	b.SupportsAnyDensity = firstGroup(reAnyDensity, text)
	b.Densities = quotedRun(reDensities, text)
	b.Locales = quotedRun(reLocales, text)

	for _, m := range reIcon.FindAllStringSubmatch(text, -1) {
		b.Icons[m[1]] = m[2]
	}

	b.Architectures = parseArchitectures(text)

	return b
}

// resolveAppName picks the single display name: preferred locale labels win,
// then the generic application-label, then the bare "zh" locale entry, then
// the application node's label attribute.
func resolveAppName(labels map[string]string, generic, nodeLabel string) string {
	for _, loc := range preferredNameLocales {
		if labels[loc] != "" {
			return labels[loc]
		}
	}
	if generic != "" {
		return generic
	}
	if labels["zh"] != "" {
		return labels["zh"]
	}
	return nodeLabel
}

// parseArchitectures collects quoted ABI tokens from every native-code and
// alt-native-code line, in line order, keeping duplicates.
func parseArchitectures(text string) []string {
	archs := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "native-code:") && !strings.HasPrefix(line, "alt-native-code:") {
			continue
		}
		for _, m := range reQuoted.FindAllStringSubmatch(line, -1) {
			archs = append(archs, m[1])
		}
	}
	return archs
}

// firstGroup returns the first capture of the first match, or "".
func firstGroup(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// allGroups returns the first capture of every match, in order.
func allGroups(re *regexp.Regexp, text string) []string {
	out := []string{}
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	return out
}

// quotedRun matches a line holding a run of quoted tokens and splits the run.
func quotedRun(re *regexp.Regexp, text string) []string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return []string{}
	}
	return allGroups(reQuoted, m[1])
}
