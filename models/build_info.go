package models

import "fmt"

// unknownBuildValue stands in for build metadata that was not set at link
// time.
const unknownBuildValue = "N/A"

// BuildInfo identifies a get-webpack-config binary. The values come from
// -ldflags "-X main.buildVersion=..." and friends.
type BuildInfo struct {
	Version string `json:"version" yaml:"version" toml:"version"`
	Date    string `json:"date" yaml:"date" toml:"date"`
	Commit  string `json:"commit" yaml:"commit" toml:"commit"`
}

// NewBuildInfo returns a BuildInfo with every empty value replaced by "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// String renders the one-line form used by --version.
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", b.Version, b.Commit, b.Date)
}

func orUnknown(s string) string {
	if s == "" {
		return unknownBuildValue
	}

	return s
}
