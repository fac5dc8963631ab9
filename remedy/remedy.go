// Package remedy writes the instructions shown once every playback strategy for a source has failed.
package remedy

import (
	"fmt"
	"strings"
	"time"

	"github.com/streamfront/streamfront/source"
)

// Remedy is a titled, multi-line explanation of what the user can do next.
type Remedy struct {
	Title  string
	Intro  string
	Steps  []string
	Outro  string
	Linger time.Duration
}

// String renders the body: intro, numbered steps and outro separated by blank lines.
func (r Remedy) String() string {
	var b strings.Builder
	b.WriteString(r.Intro)

	if len(r.Steps) > 0 {
		b.WriteString("\n\n")
		for i, step := range r.Steps {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "%d. %s", i+1, step)
		}
	}

	if r.Outro != "" {
		b.WriteString("\n\n")
		b.WriteString(r.Outro)
	}
	return b.String()
}

const (
	driveTitle   = "Problem with Google Drive video"
	genericTitle = "Error loading video"
)

// For picks the remedy matching the descriptor's provider.
func For(d source.Descriptor) Remedy {
	switch d.Kind {
	case source.GoogleDrive:
		if id, ok := d.ProviderID.Get(); ok {
			return Drive(id)
		}
		return Remedy{
			Title:  driveTitle,
			Intro:  "Check that the link is public and accessible.",
			Linger: 10 * time.Second,
		}
	case source.YouTube:
		return YouTube(d.ProviderID.OrEmpty())
	default:
		return Generic()
	}
}

// Drive explains the sharing settings a Drive file needs to play.
func Drive(id string) Remedy {
	return Remedy{
		Title: driveTitle,
		Intro: "For this video to play correctly:",
		Steps: []string{
			`Make sure the file is shared as "Anyone with the link can view"`,
			"The link must have the form: https://drive.google.com/file/d/" + id + "/view",
			"If it still does not work, open the link directly in a browser to check that it is reachable",
		},
		Outro:  "If the problem persists, contact the system administrator.",
		Linger: 10 * time.Second,
	}
}

// YouTube covers videos whose owner has turned embedding off.
func YouTube(id string) Remedy {
	r := Remedy{
		Title:  genericTitle,
		Intro:  "YouTube refused to play this video here. Its owner may have disabled embedding.",
		Outro:  "If the problem persists, contact the system administrator.",
		Linger: 5 * time.Second,
	}
	if id != "" {
		r.Steps = []string{
			"Open https://www.youtube.com/watch?v=" + id + " in a browser to check that the video still exists",
			"If it plays there, ask the owner to allow embedding or use a different link",
		}
	}
	return r
}

// Generic is used for direct files and archive.org pages.
func Generic() Remedy {
	return Remedy{
		Title:  genericTitle,
		Intro:  "Could not load the video. Check the link and try again.",
		Linger: 5 * time.Second,
	}
}
