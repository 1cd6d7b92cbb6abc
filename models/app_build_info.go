// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// shortCommitLength is the length of an abbreviated git commit hash.
const shortCommitLength = 7

// AppBuildInfo is the metadata injected into a binary with
// -ldflags "-X main.buildVersion=... -X main.buildDate=... -X main.buildCommit=...".
// Empty fields mean the binary was built without them.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{Version: version, Date: date, Commit: commit}
}

// ShortCommit returns the abbreviated commit hash or "".
func (a AppBuildInfo) ShortCommit() string {
	if len(a.Commit) > shortCommitLength {
		return a.Commit[:shortCommitLength]
	}
	return a.Commit
}

// Lines renders the build info for the startup banner, "N/A" standing in
// for missing fields.
func (a AppBuildInfo) Lines() []string {
	return []string{
		fmt.Sprintf("Build version: %s", orNA(a.Version)),
		fmt.Sprintf("Build date: %s", orNA(a.Date)),
		fmt.Sprintf("Build commit: %s", orNA(a.Commit)),
	}
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
