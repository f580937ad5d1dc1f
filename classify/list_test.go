package classify

import "testing"

func TestNextListItem(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"1." + nb + "first", "2." + nb, true},
		{"41." + nb, "42." + nb, true},
		{"-" + nb + "item", "-" + nb, true},
		{"text -" + nb + "dash", "-" + nb, true},
		{"x." + nb + "no", "", false},
		{"plain", "", false},
		{"1. ascii", "", false},
	}
	for _, tt := range tests {
		got, ok := NextListItem(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("NextListItem(%q)=%q,%v, want %q,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIsListItem(t *testing.T) {
	if !IsListItem("-" + nb + "a") {
		t.Fatalf("bullet not detected")
	}
	if !IsListItem("3." + nb + "a") {
		t.Fatalf("numbered not detected")
	}
	if IsListItem(" -" + nb + "a") {
		t.Fatalf("indented bullet should not count")
	}
	if IsListItem("hello") {
		t.Fatalf("plain line detected as list")
	}
}
