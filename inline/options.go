// Package inline is the non-interactive mode: classify sources for scripts, or play one
// without the player screen while printing progress.
package inline

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/streamfront/streamfront/playback"
	"github.com/streamfront/streamfront/source"
)

// KindFilter keeps only descriptors it returns true for.
type KindFilter func(source.Descriptor) bool

type Options struct {
	Out   io.Writer
	URLs  []string
	Json  bool
	Title string
	// Filter limits classify output. None keeps everything.
	Filter mo.Option[KindFilter]
	// Surfaces overrides the configured playback backends.
	Surfaces playback.SurfaceFactory
}

// ParseKindFilter accepts a comma separated list of kind names such as "youtube,drive".
func ParseKindFilter(description string) (KindFilter, error) {
	var kinds []source.Kind
	for _, name := range strings.Split(description, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		var k source.Kind
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("invalid kind filter: %w", err)
		}
		kinds = append(kinds, k)
	}

	if len(kinds) == 0 {
		return nil, fmt.Errorf("invalid kind filter: %q", description)
	}

	return func(d source.Descriptor) bool {
		return lo.Contains(kinds, d.Kind)
	}, nil
}
