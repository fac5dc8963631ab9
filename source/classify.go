// Package source recognises which provider a video URL belongs to and derives
// the ordered addresses a player should try for it.
package source

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/streamfront/streamfront/log"
)

// rule recognises one provider. Rules are tried in order and the first match wins.
type rule struct {
	kind  Kind
	match func(raw string) (Descriptor, bool)
}

var rules = []rule{
	{GoogleDrive, matchDrive},
	{ArchiveOrg, matchArchive},
	{YouTube, matchYouTube},
}

// Classify maps any string to a Descriptor. It never fails: unknown or malformed
// input is Direct and left for the native player to reject.
func Classify(raw string) Descriptor {
	for _, r := range rules {
		if d, ok := r.match(raw); ok {
			if err := d.Err(); err != nil {
				log.Warn(err)
			}
			log.With(log.Fields{"kind": d.Kind, "candidates": len(d.Candidates)}).Debug("classified source")
			return d
		}
	}

	log.With(log.Fields{"kind": Direct}).Debug("classified source")
	return Descriptor{
		Kind:       Direct,
		RawURL:     raw,
		ProviderID: mo.None[string](),
		Candidates: []Candidate{{Address: raw, Mode: Native}},
	}
}

var (
	driveHosts = []string{"drive.google.com", "docs.google.com"}
	drivePaths = []*regexp.Regexp{
		regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`),
		regexp.MustCompile(`id=([a-zA-Z0-9_-]+)`),
		regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`),
	}
)

// DriveID extracts the file id from a Google Drive URL.
func DriveID(raw string) mo.Option[string] {
	for _, re := range drivePaths {
		if m := re.FindStringSubmatch(raw); m != nil {
			return mo.Some(m[1])
		}
	}
	return mo.None[string]()
}

// DriveDirectURL is the download address a native player can stream.
func DriveDirectURL(id string) string {
	return "https://drive.google.com/uc?id=" + id
}

// DrivePreviewURL is the page Drive renders its own player in.
func DrivePreviewURL(id string) string {
	return "https://drive.google.com/file/d/" + id + "/preview"
}

func matchDrive(raw string) (Descriptor, bool) {
	if !lo.SomeBy(driveHosts, func(h string) bool { return strings.Contains(raw, h) }) {
		return Descriptor{}, false
	}

	d := Descriptor{Kind: GoogleDrive, RawURL: raw, ProviderID: DriveID(raw)}
	if id, ok := d.ProviderID.Get(); ok {
		d.Candidates = []Candidate{
			{Address: DriveDirectURL(id), Mode: Native},
			{Address: DrivePreviewURL(id), Mode: Frame},
		}
	} else {
		d.Candidates = []Candidate{{Address: raw, Mode: Frame}}
	}
	return d, true
}

func matchArchive(raw string) (Descriptor, bool) {
	if !strings.Contains(raw, "archive.org") {
		return Descriptor{}, false
	}
	return Descriptor{
		Kind:       ArchiveOrg,
		RawURL:     raw,
		ProviderID: mo.None[string](),
		Candidates: []Candidate{{Address: raw, Mode: Frame}},
	}, true
}

var (
	youTubeHosts   = []string{"youtube.com", "youtu.be", "youtube-nocookie.com"}
	youTubePattern = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|shorts/|watch\?v=|&v=)([^#&?]*).*`)
)

const youTubeIDLength = 11

// YouTubeID extracts the 11 character video id from a YouTube URL.
func YouTubeID(raw string) mo.Option[string] {
	if !lo.SomeBy(youTubeHosts, func(h string) bool { return strings.Contains(raw, h) }) {
		return mo.None[string]()
	}
	m := youTubePattern.FindStringSubmatch(raw)
	if m == nil || len(m[2]) != youTubeIDLength {
		return mo.None[string]()
	}
	return mo.Some(m[2])
}

// YouTubeEmbedURL is the embed address with related videos, annotations and keyboard controls off.
func YouTubeEmbedURL(id string) string {
	return "https://www.youtube.com/embed/" + id +
		"?autoplay=1&rel=0&modestbranding=1&controls=0&showinfo=0&fs=1&iv_load_policy=3&disablekb=1"
}

func matchYouTube(raw string) (Descriptor, bool) {
	id, ok := YouTubeID(raw).Get()
	if !ok {
		return Descriptor{}, false
	}
	return Descriptor{
		Kind:       YouTube,
		RawURL:     raw,
		ProviderID: mo.Some(id),
		Candidates: []Candidate{{Address: YouTubeEmbedURL(id), Mode: Frame}},
	}, true
}
