package domain

import (
	"strconv"
	"strings"
)

// UpstreamKind is the shape of an upstream reference, used to pick default fetch scripts.
type UpstreamKind int

const (
	// UpstreamGit is any upstream not matched by another kind.
	UpstreamGit UpstreamKind = iota
	// UpstreamArch is an archlinux.org package page.
	UpstreamArch
	// UpstreamCurl is a distfile listing sorted by modification time, descending.
	UpstreamCurl
	// UpstreamEmpty is an empty upstream.
	UpstreamEmpty
)

// Channel names with built-in defaults.
const (
	ChannelRelease  = "release"
	ChannelUnstable = "unstable"
	ChannelCommit   = "commit"
)

// ClassifyUpstream determines the shape of an upstream reference.
func ClassifyUpstream(upstream string) UpstreamKind {
	switch {
	case strings.Contains(upstream, "archlinux.org"):
		return UpstreamArch
	case strings.Contains(upstream, "C=M") && strings.Contains(upstream, "O=D"):
		return UpstreamCurl
	case upstream == "":
		return UpstreamEmpty
	default:
		return UpstreamGit
	}
}

var defaultFetches = map[UpstreamKind]map[string]string{
	UpstreamArch: {
		ChannelRelease: "archver",
	},
	UpstreamCurl: {
		ChannelRelease:  "defcurlrelease",
		ChannelUnstable: "defcurlunstable",
		ChannelCommit:   "defcurlcommit",
	},
	UpstreamGit: {
		ChannelRelease:  "defgitrelease",
		ChannelUnstable: "defgitunstable",
		ChannelCommit:   "defgitcommit",
	},
}

// DefaultFetch returns the shell-library function used for a channel when none is configured.
// An empty upstream yields an empty fetch.
func DefaultFetch(kind UpstreamKind, channel string) (string, bool) {
	if kind == UpstreamEmpty {
		return "", true
	}
	fetch, ok := defaultFetches[kind][channel]
	return fetch, ok
}

// DefaultExpected returns the validation pattern used for a channel when none is configured.
// Numeric channel names track a major version: "3" expects "3", "3.1", "3.1.4", ...
func DefaultExpected(channel string) (string, bool) {
	switch channel {
	case ChannelRelease:
		return `^[0-9]+(\.[0-9]+)*$`, true
	case ChannelUnstable:
		return `^[0-9]+(\.[0-9]+)*-?(rc|alpha|beta|a|b|pre|dev)?[0-9]*$`, true
	case ChannelCommit:
		return `^[0-9a-f]{40}$`, true
	}

	if _, err := strconv.ParseUint(channel, 10, 64); err == nil {
		return `^` + channel + `(\.[0-9]+)*$`, true
	}
	return "", false
}
