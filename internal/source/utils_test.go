package source

import (
	"bytes"
	"reflect"
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		changed bool
	}{
		{"no newlines", "no newlines", false},
		{"a\nb\n", "a\nb\n", false},
		{"a\r\nb\r\n", "a\nb\n", true},
		{"mixed\r\nand\nplain\n", "mixed\nand\nplain\n", true},
		{"lone\rcarriage", "lone\rcarriage", false},
	}
	for _, tt := range tests {
		got, changed := normalizeCRLF([]byte(tt.in))
		if !bytes.Equal(got, []byte(tt.want)) || changed != tt.changed {
			t.Errorf("normalizeCRLF(%q) = %q, %v; expected %q, %v",
				tt.in, got, changed, tt.want, tt.changed)
		}
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	got, had := removeBOM(withBOM)
	if !had || string(got) != "hi" {
		t.Errorf("removeBOM failed: %q, %v", got, had)
	}

	plain := []byte("hi")
	got, had = removeBOM(plain)
	if had || string(got) != "hi" {
		t.Errorf("removeBOM touched plain content: %q, %v", got, had)
	}
}

func TestBuildLineIndex(t *testing.T) {
	idx := buildLineIndex([]byte("ab\ncd\n\nef"))
	want := []uint32{2, 5, 6}
	if !reflect.DeepEqual(idx, want) {
		t.Errorf("buildLineIndex = %v, expected %v", idx, want)
	}
	if got := buildLineIndex([]byte("no newline")); len(got) != 0 {
		t.Errorf("expected empty index, got %v", got)
	}
}

func TestToLineCol(t *testing.T) {
	// "ab\ncd\n\nef": line 1 = "ab", line 2 = "cd", line 3 = "", line 4 = "ef".
	idx := buildLineIndex([]byte("ab\ncd\n\nef"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{1, LineCol{Line: 1, Col: 2}},
		{2, LineCol{Line: 1, Col: 3}}, // the newline ends line 1
		{3, LineCol{Line: 2, Col: 1}},
		{4, LineCol{Line: 2, Col: 2}},
		{5, LineCol{Line: 2, Col: 3}},
		{6, LineCol{Line: 3, Col: 1}}, // the empty line's own newline
		{7, LineCol{Line: 4, Col: 1}},
		{8, LineCol{Line: 4, Col: 2}},
	}
	for _, tt := range tests {
		if got := toLineCol(idx, tt.off); got != tt.want {
			t.Errorf("toLineCol(%d) = %d:%d, expected %d:%d",
				tt.off, got.Line, got.Col, tt.want.Line, tt.want.Col)
		}
	}

	// Single-line file.
	if got := toLineCol(nil, 4); got != (LineCol{Line: 1, Col: 5}) {
		t.Errorf("single line: got %d:%d", got.Line, got.Col)
	}
}

func TestNormalizePath(t *testing.T) {
	if got := normalizePath("a/./b/../c.rs"); got != "a/c.rs" {
		t.Errorf("normalizePath = %q", got)
	}
}
