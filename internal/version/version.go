// Package version reports build metadata from -ldflags or the module build info.
package version

import (
	"runtime"
	"runtime/debug"
	"strings"
)

// Set via -ldflags "-X flowdoc/internal/version.Version=..."
var (
	Version = ""
	Commit  = ""
	Date    = ""
)

var readBuildInfo = debug.ReadBuildInfo

// Info describes the running binary
type Info struct {
	Version    string `json:"version"`
	Commit     string `json:"commit,omitempty"`
	CommitTime string `json:"commit_time,omitempty"`
	Modified   bool   `json:"modified"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Current returns the build info, preferring -ldflags values when set
func Current() Info {
	info := Info{
		Version:   "devel",
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi, ok := readBuildInfo(); ok && bi != nil {
		info.Version = normalize(bi.Main.Version)
		info.Commit = setting(bi, "vcs.revision")
		info.CommitTime = setting(bi, "vcs.time")
		info.Modified = strings.EqualFold(setting(bi, "vcs.modified"), "true")
	}

	if Version != "" {
		info.Version = normalize(Version)
	}
	if Commit != "" {
		info.Commit = Commit
	}
	if Date != "" {
		info.CommitTime = Date
	}
	return info
}

// String returns the version alone
func String() string {
	return Current().Version
}

func normalize(v string) string {
	if v == "" || v == "(devel)" {
		return "devel"
	}
	return v
}

func setting(bi *debug.BuildInfo, key string) string {
	for _, s := range bi.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}
