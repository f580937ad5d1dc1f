package cli

import (
	"strings"
	"testing"

	"github.com/iw2rmb/kanapad/ime"
)

func TestFormatSeq(t *testing.T) {
	tests := []struct {
		seq  []ime.Code
		want string
	}{
		{seq: []ime.Code{ime.Key('k'), ime.Key('y'), ime.Key('a')}, want: "kya"},
		{seq: []ime.Code{ime.ShiftLeft, ime.Digit(1)}, want: "ShiftLeft+Digit1"},
		{seq: []ime.Code{ime.ControlLeft, ime.AltLeft, ime.Key('g')}, want: "ControlLeft+AltLeft+g"},
	}
	for _, tt := range tests {
		if got := formatSeq(tt.seq); got != tt.want {
			t.Fatalf("formatSeq(%v)=%q, want %q", tt.seq, got, tt.want)
		}
	}
}

func TestKanaTable_ListsEntries(t *testing.T) {
	out := kanaTable(ime.KanaTable())
	for _, want := range []string{"keys", "ka", "か", "kya", "きゃ"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q", want)
		}
	}
}
