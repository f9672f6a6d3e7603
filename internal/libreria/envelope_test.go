package libreria

import (
	"encoding/json"
	"testing"
)

func TestFlexBool_ToleratesStringEncoding(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{`{"status": true}`, true},
		{`{"status": "true"}`, true},
		{`{"status": 1}`, true},
		{`{"status": false}`, false},
		{`{"status": "false"}`, false},
		{`{"status": 0}`, false},
		{`{"status": null}`, false},
	}

	for _, tc := range cases {
		var e envelope
		if err := json.Unmarshal([]byte(tc.raw), &e); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.raw, err)
		}
		if bool(e.Status) != tc.want {
			t.Fatalf("status for %s = %v, want %v", tc.raw, bool(e.Status), tc.want)
		}
	}
}

func TestFlexBool_RejectsGarbage(t *testing.T) {
	var e envelope
	if err := json.Unmarshal([]byte(`{"status": {"nested": true}}`), &e); err == nil {
		t.Fatal("expected error for object-valued status")
	}
}

func TestIsEmptyResult(t *testing.T) {
	cases := []struct {
		msg  string
		want bool
	}{
		{"No se encontraron usuarios", true},
		{"no se encontraron registros", true},
		{"  No se encontró el cliente  ", true},
		{"No hay registros", true},
		{"Sin resultados para la búsqueda", true},
		{"Error interno del servidor", false},
		{"El correo ya está registrado", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := isEmptyResult(tc.msg); got != tc.want {
			t.Fatalf("isEmptyResult(%q) = %v, want %v", tc.msg, got, tc.want)
		}
	}
}

func TestEnvelopeOK_SentinelCountsAsSuccess(t *testing.T) {
	e := envelope{Status: false, Message: "No se encontraron usuarios"}
	if !e.ok() {
		t.Fatal("empty-result sentinel should be a successful outcome")
	}

	e = envelope{Status: false, Message: "Credenciales inválidas"}
	if e.ok() {
		t.Fatal("real failure should not be a successful outcome")
	}
}
