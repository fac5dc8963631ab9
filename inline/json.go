package inline

import (
	"encoding/json"
	"io"

	"github.com/streamfront/streamfront/source"
)

type Candidate struct {
	// Address is what the surface loads.
	Address string `json:"address"`
	// Mode is either "native" or "frame".
	Mode string `json:"mode"`
}

type Classified struct {
	URL        string      `json:"url"`
	Kind       string      `json:"kind" jsonschema:"enum=direct,enum=youtube,enum=google-drive,enum=archive-org"`
	ProviderID string      `json:"provider_id,omitempty"`
	Candidates []Candidate `json:"candidates"`
	// Error is set when the source cannot be played at all.
	Error string `json:"error,omitempty"`
}

type Output struct {
	Result []*Classified `json:"result"`
}

func classified(d source.Descriptor) *Classified {
	c := &Classified{
		URL:        d.RawURL,
		Kind:       d.Kind.String(),
		ProviderID: d.ProviderID.OrEmpty(),
		Candidates: make([]Candidate, len(d.Candidates)),
	}
	for i, candidate := range d.Candidates {
		c.Candidates[i] = Candidate{Address: candidate.Address, Mode: candidate.Mode.String()}
	}
	if err := d.Err(); err != nil {
		c.Error = err.Error()
	}
	return c
}

func writeJson(out io.Writer, descriptors []source.Descriptor) error {
	result := make([]*Classified, len(descriptors))
	for i, d := range descriptors {
		result[i] = classified(d)
	}

	return json.NewEncoder(out).Encode(&Output{Result: result})
}
