package docsurl

import (
	"regexp"
	"strings"
)

// Version is the product version descriptor as published in the "version"
// setting. Only Tag takes part in link resolution.
type Version struct {
	Tag  string `json:"tag,omitempty" yaml:"tag,omitempty"`
	Date string `json:"date,omitempty" yaml:"date,omitempty"`
	Hash string `json:"hash,omitempty" yaml:"hash,omitempty"`
}

// Channel is the documentation path segment a release line is published under.
type Channel string

// ChannelLatest points at the docs built from the development branch.
const ChannelLatest Channel = "latest"

func (c Channel) String() string { return string(c) }

// FallbackReason explains why a tag resolved to ChannelLatest.
type FallbackReason string

const (
	ReasonNone      FallbackReason = "none"
	ReasonAbsent    FallbackReason = "absent"
	ReasonUnmatched FallbackReason = "unmatched"
	ReasonSnapshot  FallbackReason = "snapshot"
)

// Only major versions 0 and 1 have channels; anything else lands on latest.
var tagPattern = regexp.MustCompile(`^v?[01]\.(\d+)(?:\.\d+)?(-.*)?`)

const snapshotSuffix = "-snapshot"

// ResolveChannel maps a version descriptor onto its documentation channel.
// A nil or tagless version resolves to ChannelLatest.
func ResolveChannel(v *Version) Channel {
	ch, _ := resolve(v)
	return ch
}

// ExplainChannel is ResolveChannel plus the reason for a latest fallback.
func ExplainChannel(v *Version) (Channel, FallbackReason) {
	return resolve(v)
}

func resolve(v *Version) (Channel, FallbackReason) {
	if v == nil || v.Tag == "" {
		return ChannelLatest, ReasonAbsent
	}
	m := tagPattern.FindStringSubmatch(v.Tag)
	if m == nil {
		return ChannelLatest, ReasonUnmatched
	}
	// Snapshot builds come off master, so their docs are the latest ones.
	if strings.EqualFold(m[2], snapshotSuffix) {
		return ChannelLatest, ReasonSnapshot
	}
	// 1.x is the enterprise numbering of the same release line; both share
	// the v0.x documentation tree. Patch level never gets its own channel.
	return Channel("v0." + m[1]), ReasonNone
}
