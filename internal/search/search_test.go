package search

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  García ", "garcia"},
		{"MÜLLER", "muller"},
		{"josé pérez", "jose perez"},
		{"plain", "plain"},
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

type record struct {
	name   string
	active bool
}

func TestTextMatch(t *testing.T) {
	hay := func(r record) string { return r.name }

	match := TextMatch("garcía", hay)
	if !match(record{name: "Ana Garcia"}) {
		t.Fatal("accent-folded term should match unaccented haystack")
	}
	if match(record{name: "Luis Pérez"}) {
		t.Fatal("non-matching record matched")
	}

	all := TextMatch("   ", hay)
	if !all(record{name: "anything"}) {
		t.Fatal("empty term must match all records")
	}
}

func TestAndComposition(t *testing.T) {
	hay := func(r record) string { return r.name }
	active := func(r record) bool { return r.active }

	p := And(TextMatch("ana", hay), Match[record](StatusActive, active))
	if !p(record{name: "Ana", active: true}) {
		t.Fatal("record matching both predicates rejected")
	}
	if p(record{name: "Ana", active: false}) {
		t.Fatal("inactive record passed an active-only filter")
	}
	if p(record{name: "Luis", active: true}) {
		t.Fatal("non-matching text passed")
	}

	if !And[record]()(record{}) {
		t.Fatal("empty AND must match all")
	}
}

func TestParseStatusFilter_UnknownMatchesAll(t *testing.T) {
	cases := map[string]StatusFilter{
		"active":    StatusActive,
		"Activos":   StatusActive,
		"inactive":  StatusInactive,
		"inactivo":  StatusInactive,
		"":          StatusAll,
		"todos":     StatusAll,
		"whatever?": StatusAll,
	}
	for in, want := range cases {
		if got := ParseStatusFilter(in); got != want {
			t.Fatalf("ParseStatusFilter(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestStatusFilterCycle(t *testing.T) {
	f := StatusAll
	seen := []string{f.Label()}
	for i := 0; i < 3; i++ {
		f = f.Next()
		seen = append(seen, f.Label())
	}
	want := []string{"All", "Active", "Inactive", "All"}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("cycle = %v, want %v", seen, want)
		}
	}
}
