// Package history remembers which sources were opened and how playback ended.
// Playback positions are deliberately not stored.
package history

import (
	"fmt"
	"time"

	"github.com/metafates/gache"
	"github.com/spf13/viper"
	"github.com/streamfront/streamfront/filesystem"
	"github.com/streamfront/streamfront/key"
	"github.com/streamfront/streamfront/playback"
	"github.com/streamfront/streamfront/source"
	"github.com/streamfront/streamfront/where"
	"golang.org/x/exp/slices"
)

// Record is one remembered source, keyed by its raw URL.
type Record struct {
	Title       string      `json:"title"`
	URL         string      `json:"url"`
	Kind        source.Kind `json:"kind"`
	Outcome     string      `json:"outcome"`
	Opens       int         `json:"opens"`
	FirstOpened time.Time   `json:"first_opened"`
	LastOpened  time.Time   `json:"last_opened"`
}

func (r *Record) String() string {
	if r.Title == "" {
		return r.URL
	}
	return fmt.Sprintf("%s (%s)", r.Title, r.URL)
}

var now = time.Now

func store() *gache.Cache[map[string]*Record] {
	return gache.New[map[string]*Record](&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	})
}

// Get returns every record keyed by URL.
func Get() (map[string]*Record, error) {
	cached, expired, err := store().Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Record), nil
	}
	return cached, nil
}

// List returns records, most recently opened first.
func List() ([]*Record, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	records := make([]*Record, 0, len(saved))
	for _, r := range saved {
		records = append(records, r)
	}
	slices.SortFunc(records, func(a, b *Record) int {
		return b.LastOpened.Compare(a.LastOpened)
	})
	return records, nil
}

// Save records that d was opened under title and ended with outcome.
// Only the newest history.limit records are kept.
func Save(d source.Descriptor, title string, outcome playback.Outcome) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	t := now()
	record, ok := saved[d.RawURL]
	if !ok {
		record = &Record{URL: d.RawURL, FirstOpened: t}
		saved[d.RawURL] = record
	}
	if title != "" {
		record.Title = title
	}
	record.Kind = d.Kind
	record.Outcome = outcome.String()
	record.Opens++
	record.LastOpened = t

	trim(saved, viper.GetInt(key.HistoryLimit))
	return store().Set(saved)
}

func trim(saved map[string]*Record, limit int) {
	if limit <= 0 || len(saved) <= limit {
		return
	}

	records := make([]*Record, 0, len(saved))
	for _, r := range saved {
		records = append(records, r)
	}
	slices.SortFunc(records, func(a, b *Record) int {
		return b.LastOpened.Compare(a.LastOpened)
	})
	for _, r := range records[limit:] {
		delete(saved, r.URL)
	}
}

// Remove forgets a single URL.
func Remove(url string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, url)
	return store().Set(saved)
}

// Clear forgets everything.
func Clear() error {
	return store().Set(make(map[string]*Record))
}
