package libreria

import "testing"

func TestNextOrderStatus(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"pendiente", "pagado"},
		{"pagado", "enviado"},
		{"enviado", "entregado"},
		{"entregado", "entregado"},
		{"cancelado", "cancelado"},
		{" Pagado ", "enviado"},
		{"", "pendiente"},
		{"desconocido", "pendiente"},
	}
	for _, tc := range cases {
		if got := NextOrderStatus(tc.in); got != tc.want {
			t.Fatalf("NextOrderStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
