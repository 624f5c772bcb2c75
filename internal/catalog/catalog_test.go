package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestDefault_Content(t *testing.T) {
	c := Default()

	events := c.Events()
	if len(events) != 12 {
		t.Fatalf("expected 12 events, got %d", len(events))
	}
	if events[0].Title != "El Golpe de Estado" || events[0].Year != 1973 {
		t.Errorf("unexpected first event %+v", events[0])
	}
	for i := 1; i < len(events); i++ {
		if events[i].Year < events[i-1].Year {
			t.Errorf("timeline out of order at %d: %d after %d", i, events[i].Year, events[i-1].Year)
		}
	}

	if n := len(c.Concepts()); n != 12 {
		t.Fatalf("expected 12 concepts, got %d", n)
	}
}

func TestDefault_ReturnsCopies(t *testing.T) {
	c := Default()
	events := c.Events()
	events[0].Title = "mutated"
	if c.Events()[0].Title != "El Golpe de Estado" {
		t.Fatal("catalog was mutated through returned slice")
	}
}

func TestLookup(t *testing.T) {
	c := Default()

	e, err := c.EventByTitle("plebiscito del no")
	if err != nil {
		t.Fatalf("EventByTitle: %v", err)
	}
	if e.Year != 1988 {
		t.Errorf("expected 1988, got %d", e.Year)
	}

	k, err := c.ConceptByTerm("Cacerolazo")
	if err != nil {
		t.Fatalf("ConceptByTerm: %v", err)
	}
	if !strings.Contains(k.Definition, "ollas") {
		t.Errorf("unexpected definition %q", k.Definition)
	}

	if _, err := c.ConceptByTerm("Terremoto"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", `{"events": [`},
		{"empty title", `{"events":[{"year":1973}]}`},
		{"duplicate concept", `{"concepts":[{"term":"Exilio"},{"term":"Exilio"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tt.doc)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
