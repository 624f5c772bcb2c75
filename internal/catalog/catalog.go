// Package catalog holds the static timeline and glossary content.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

//go:embed catalog.json
var embedded []byte

var ErrNotFound = errors.New("catalog entry not found")

// Event is a dated milestone on the timeline.
type Event struct {
	Year        int    `json:"year"`
	Month       string `json:"month"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Concept is a glossary term.
type Concept struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Catalog is read-only after construction and safe for concurrent use.
type Catalog struct {
	events   []Event
	concepts []Concept
}

type document struct {
	Events   []Event   `json:"events"`
	Concepts []Concept `json:"concepts"`
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return Load(bytes.NewReader(embedded))
})

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := defaultCatalog()
	if err != nil {
		// The embedded document is covered by tests.
		panic(fmt.Sprintf("catalog: embedded data: %v", err))
	}
	return c
}

// Load decodes a catalog document and checks that titles and terms are
// present and unique.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]bool)
	for i, e := range doc.Events {
		if e.Title == "" {
			return nil, fmt.Errorf("event %d: empty title", i)
		}
		if seen[e.Title] {
			return nil, fmt.Errorf("duplicate event %q", e.Title)
		}
		seen[e.Title] = true
	}
	clear(seen)
	for i, c := range doc.Concepts {
		if c.Term == "" {
			return nil, fmt.Errorf("concept %d: empty term", i)
		}
		if seen[c.Term] {
			return nil, fmt.Errorf("duplicate concept %q", c.Term)
		}
		seen[c.Term] = true
	}

	return &Catalog{events: doc.Events, concepts: doc.Concepts}, nil
}

// Events returns the timeline in chronological order. The slice is a copy.
func (c *Catalog) Events() []Event {
	return append([]Event(nil), c.events...)
}

// Concepts returns the glossary. The slice is a copy.
func (c *Catalog) Concepts() []Concept {
	return append([]Concept(nil), c.concepts...)
}

// EventByTitle finds an event by exact title, ignoring case.
func (c *Catalog) EventByTitle(title string) (Event, error) {
	for _, e := range c.events {
		if strings.EqualFold(e.Title, title) {
			return e, nil
		}
	}
	return Event{}, fmt.Errorf("event %q: %w", title, ErrNotFound)
}

// ConceptByTerm finds a concept by exact term, ignoring case.
func (c *Catalog) ConceptByTerm(term string) (Concept, error) {
	for _, k := range c.concepts {
		if strings.EqualFold(k.Term, term) {
			return k, nil
		}
	}
	return Concept{}, fmt.Errorf("concept %q: %w", term, ErrNotFound)
}
