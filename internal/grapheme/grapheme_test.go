package grapheme

import "testing"

func TestSplit_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + "か" + "👨\u200d👩\u200d👧" + "b"
	got := Split(text)
	want := []string{"a", "e\u0301", "か", "👨\u200d👩\u200d👧", "b"}
	if len(got) != len(want) {
		t.Fatalf("split=%q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("split[%d]=%q, want %q", i, got[i], want[i])
		}
	}
	if got := Split(""); got != nil {
		t.Fatalf("split of empty=%q, want nil", got)
	}
}

func TestIsSingle(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{in: "", want: false},
		{in: "a", want: true},
		{in: "e\u0301", want: true},
		{in: "👨\u200d👩\u200d👧", want: true},
		{in: "ab", want: false},
		{in: "きゃ", want: false},
	}
	for _, tc := range cases {
		if got := IsSingle(tc.in); got != tc.want {
			t.Fatalf("IsSingle(%q): got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestWidth_WideAndNarrow(t *testing.T) {
	if got, want := Width("a"), 1; got != want {
		t.Fatalf("width of 'a': got %d, want %d", got, want)
	}
	if got, want := Width("か"), 2; got != want {
		t.Fatalf("width of 'か': got %d, want %d", got, want)
	}
	if got, want := Width(""), 0; got != want {
		t.Fatalf("width of empty: got %d, want %d", got, want)
	}
}
