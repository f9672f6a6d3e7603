package main

import (
	"testing"

	"github.com/atrilhq/atril/internal/libreria"
	"github.com/atrilhq/atril/internal/search"
)

func TestFilterByStatus(t *testing.T) {
	authors := []libreria.Author{
		{ID: 1, Name: "Borges", Active: true},
		{ID: 2, Name: "Burgos", Active: false},
		{ID: 3, Name: "Mistral", Active: true},
	}
	active := func(a libreria.Author) bool { return a.Active }

	if got := filterByStatus(authors, search.StatusAll, active); len(got) != 3 {
		t.Fatalf("StatusAll kept %d records, want 3", len(got))
	}
	got := filterByStatus(authors, search.StatusActive, active)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("StatusActive = %+v, want Borges and Mistral", got)
	}
	got = filterByStatus(authors, search.StatusInactive, active)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("StatusInactive = %+v, want only Burgos", got)
	}
}
