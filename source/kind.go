package source

import (
	"fmt"
	"strings"
)

// Kind is the provider a URL was recognised as.
type Kind int

const (
	Direct Kind = iota
	YouTube
	GoogleDrive
	ArchiveOrg
)

var kindNames = map[Kind]string{
	Direct:      "direct",
	YouTube:     "youtube",
	GoogleDrive: "google-drive",
	ArchiveOrg:  "archive-org",
}

// Kinds lists every kind in the order Classify tries them.
func Kinds() []Kind {
	return []Kind{GoogleDrive, ArchiveOrg, YouTube, Direct}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[Direct]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for kind, n := range kindNames {
		if n == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown source kind %q", text)
}

// Mode says which surface renders a candidate.
type Mode int

const (
	// Native addresses are fed to a media player.
	Native Mode = iota
	// Frame addresses are preview or embed pages.
	Frame
)

func (m Mode) String() string {
	if m == Frame {
		return "frame"
	}
	return "native"
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
