package cache

import (
	"testing"

	"github.com/atrilhq/atril/internal/state"
)

type widget struct {
	ID   int64  `json:"widget_id"`
	Name string `json:"name"`
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	saved := state.SavedState[widget]{
		Items:      []widget{{ID: 1, Name: "uno"}, {ID: 2, Name: "dos"}},
		Page:       2,
		PageSize:   5,
		TotalPages: 4,
		TotalCount: 17,
	}

	entry, err := Encode(saved)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	restored, err := Decode[widget](entry)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(restored.Items) != 2 || restored.Items[1].Name != "dos" {
		t.Fatalf("restored = %#v, want original items", restored.Items)
	}
	if restored.Page != saved.Page || restored.PageSize != saved.PageSize ||
		restored.TotalPages != saved.TotalPages || restored.TotalCount != saved.TotalCount {
		t.Fatalf("cursor = %+v, want %+v", restored, saved)
	}
}

func TestDecode_EmptyEntry(t *testing.T) {
	restored, err := Decode[widget](Entry{})
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if restored.Items != nil {
		t.Fatalf("items = %#v, want nil for empty entry", restored.Items)
	}
}

func TestDecode_MalformedItems(t *testing.T) {
	if _, err := Decode[widget](Entry{Items: []byte(`{not json`)}); err == nil {
		t.Fatal("expected error for malformed items payload")
	}
}
