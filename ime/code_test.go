package ime

import (
	"slices"
	"testing"
)

func TestCodesForRune(t *testing.T) {
	tests := []struct {
		r    rune
		want []Code
	}{
		{'k', []Code{"KeyK"}},
		{'K', []Code{ShiftLeft, "KeyK"}},
		{'7', []Code{"Digit7"}},
		{'!', []Code{ShiftLeft, "Digit1"}},
		{'=', []Code{Equal}},
		{'あ', nil},
	}
	for _, tt := range tests {
		if got := CodesForRune(tt.r); !slices.Equal(got, tt.want) {
			t.Fatalf("CodesForRune(%q)=%v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestCodeForKey(t *testing.T) {
	if c, ok := CodeForKey("enter"); !ok || c != Enter {
		t.Fatalf("enter=%v,%v", c, ok)
	}
	if c, ok := CodeForKey("F3"); !ok || c != F3 {
		t.Fatalf("F3=%v,%v", c, ok)
	}
	if _, ok := CodeForKey("ctrl+q"); ok {
		t.Fatalf("ctrl+q should not map")
	}
}

func TestRomaji(t *testing.T) {
	seq, err := Romaji("Sha")
	if err != nil {
		t.Fatalf("romaji: %v", err)
	}
	if want := []Code{"KeyS", "KeyH", "KeyA"}; !slices.Equal(seq, want) {
		t.Fatalf("seq=%v, want %v", seq, want)
	}
	if _, err := Romaji("k1"); err == nil {
		t.Fatalf("expected error for digit")
	}
	if _, err := Romaji(""); err == nil {
		t.Fatalf("expected error for empty sequence")
	}
}
