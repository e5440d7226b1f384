// ============================================================================
// boolex - Boolean logic toolkit
// ============================================================================
//
// Package:     version
// Description: Central version and project information
// Author:      msto63
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Project information printed by the credits command
const (
	Name        = "boolex"
	Title       = "Logical Expression Parser"
	Author      = "msto63"
	License     = "MIT"
	Description = "Parses boolean logic expressions, builds their syntax trees and prints truth tables"
	Repository  = "https://github.com/msto63/boolex"
)

// Version is the release version; Commit and BuildDate are set via -ldflags
var (
	Version   = "0.1.0"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info describes the running build
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// Platform returns "os/arch"
func (i Info) Platform() string {
	return i.OS + "/" + i.Arch
}

// String returns a one-line summary like "boolex 0.1.0 (go1.24.0 linux/amd64)"
func (i Info) String() string {
	return fmt.Sprintf("%s %s (%s %s)", Name, i.Version, i.GoVersion, i.Platform())
}
