package models

import "time"

// InspectConfig contains configuration for an inspection run
type InspectConfig struct {
	// Input
	APKPath string

	// aapt2 binary override; empty means auto-discover
	AaptPath string

	// SDK version table override; empty means the embedded table
	SDKTablePath string

	// Output
	JSONOutput bool
	ShowRaw    bool
	OutputPath string // write the report here instead of stdout

	// Subprocess timeout
	Timeout time.Duration
}

// ScanConfig contains configuration for a directory scan
type ScanConfig struct {
	InputDir     string
	AaptPath     string
	SDKTablePath string
	JSONOutput   bool
	Timeout      time.Duration
}
