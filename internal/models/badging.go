package models

// Badging holds the metadata extracted from an `aapt2 dump badging` report.
// Every field keeps the value exactly as printed by aapt2; nothing is
// semantically parsed beyond string extraction.
type Badging struct {
	// Package identity
	PackageName string `json:"package_name"`
	VersionName string `json:"version_name"`
	VersionCode string `json:"version_code"`

	// Platform/compile SDK attributes
	PlatformBuildVersionName string `json:"platform_build_version_name,omitempty"`
	PlatformBuildVersionCode string `json:"platform_build_version_code,omitempty"`
	CompileSdkVersion        string `json:"compile_sdk_version,omitempty"`
	CompileSdkCodename       string `json:"compile_sdk_codename,omitempty"`
	MinSdk                   string `json:"min_sdk,omitempty"`
	TargetSdk                string `json:"target_sdk,omitempty"`

	// Display name. AppName is the resolved single name, AppNameLabels keeps
	// every per-locale label found in the report.
	AppName       string            `json:"app_name"`
	AppNameLabels map[string]string `json:"app_name_labels"`

	LaunchableActivity string `json:"launchable_activity,omitempty"`

	// Collected in order of appearance, duplicates preserved
	Permissions     []string `json:"permissions"`
	Features        []string `json:"features"`
	ImpliedFeatures []string `json:"implied_features"`

	SupportsScreens    []string `json:"supports_screens"`
	SupportsAnyDensity string   `json:"supports_any_density,omitempty"`
	Densities          []string `json:"densities"`
	Locales            []string `json:"locales"`

	// Icon paths keyed by the numeric density string
	Icons map[string]string `json:"icons"`

	// Native ABIs from native-code / alt-native-code lines, in line order
	Architectures []string `json:"architectures"`

	// The original report text, trimmed
	Raw string `json:"raw,omitempty"`
}
