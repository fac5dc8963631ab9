package source

import (
	"errors"
	"fmt"

	"github.com/samber/mo"
)

// ErrClassificationAmbiguous marks a URL that looks like a Google Drive link
// but carries no recognisable file id.
var ErrClassificationAmbiguous = errors.New("classification ambiguous")

// Candidate is one playable address and the surface able to render it.
type Candidate struct {
	Address string
	Mode    Mode
}

func (c Candidate) String() string {
	return c.Mode.String() + " " + c.Address
}

// Descriptor is the immutable result of Classify.
// Candidates is never empty and is ordered by preference.
type Descriptor struct {
	Kind       Kind
	RawURL     string
	ProviderID mo.Option[string]
	Candidates []Candidate
}

// Candidate returns the candidate at index i.
func (d Descriptor) Candidate(i int) (Candidate, bool) {
	if i < 0 || i >= len(d.Candidates) {
		return Candidate{}, false
	}
	return d.Candidates[i], true
}

// HasNext reports whether a candidate exists after index i.
func (d Descriptor) HasNext(i int) bool {
	return i+1 < len(d.Candidates)
}

// Err is non-nil for descriptors built without a provider id where one was expected.
func (d Descriptor) Err() error {
	if d.Kind == GoogleDrive && d.ProviderID.IsAbsent() {
		return fmt.Errorf("%w: no drive file id in %q", ErrClassificationAmbiguous, d.RawURL)
	}
	return nil
}
