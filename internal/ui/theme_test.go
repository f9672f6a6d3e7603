package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Papel" || names[1] != "Tinta" || names[2] != "Noche" {
		t.Fatalf("ThemeNames() = %v, want [Papel Tinta Noche]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Papel"); got != "Tinta" {
		t.Fatalf("NextTheme(Papel) = %q, want Tinta", got)
	}
	if got := NextTheme("Noche"); got != "Papel" {
		t.Fatalf("NextTheme(Noche) = %q, want Papel", got)
	}
	if got := NextTheme("Desconocido"); got != "Papel" {
		t.Fatalf("NextTheme(unknown) = %q, want Papel", got)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got)
		}
	}
	if got := GetTheme("Desconocido").Name; got != "Papel" {
		t.Fatalf("GetTheme(unknown).Name = %q, want Papel (fallback)", got)
	}
}

func TestEveryThemeCoversOrderStatuses(t *testing.T) {
	statuses := []string{"activo", "inactivo", "pendiente", "pagado", "enviado", "entregado", "cancelado"}
	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		for _, status := range statuses {
			if theme.StatusColors[status] == "" {
				t.Fatalf("theme %s lacks a color for %q", name, status)
			}
		}
	}
}
