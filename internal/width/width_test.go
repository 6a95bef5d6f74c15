package width

import "testing"

func TestRuneWidthBoundaries(t *testing.T) {
	cases := []struct {
		name string
		r    rune
		want int
	}{
		{"ascii-a", 'a', 1},
		{"ascii-paren", '(', 1},
		{"cjk-before-wide-block", 0x10FF, 1},
		{"cjk-wide-block-start", 0x1100, 2},
		{"cjk-wide-block-end", 0x115F, 2},
		{"cjk-after-wide-block", 0x1160, 1},
		{"hangul-syllable", 0xAC00, 2},
		{"cjk-unified-ideograph", 0x4E00, 2},
		{"combining-before-range", 0x02FF, 1},
		{"combining-grave-accent", 0x0300, 0},
		{"combining-range-end", 0x036F, 0},
		{"combining-after-range", 0x0370, 1},
		{"zwsp", 0x200B, 0},
		{"zwnj", 0x200C, 0},
		{"zwj", 0x200D, 0},
		{"bom", 0xFEFF, 0},
		{"astral-wide", 0x20000, 2},
		{"astral-after-wide", 0x2A6E0, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := RuneWidth(c.r); got != c.want {
				t.Errorf("RuneWidth(%U) = %d, want %d", c.r, got, c.want)
			}
		})
	}
}

func TestIterateBasic(t *testing.T) {
	g := Iterate("ab")
	if len(g) != 2 {
		t.Fatalf("expected 2 graphemes, got %d", len(g))
	}
	if g[0].Text != "a" || g[0].ByteOffset != 0 || g[0].Width != 1 {
		t.Errorf("unexpected first grapheme: %+v", g[0])
	}
	if g[1].Text != "b" || g[1].ByteOffset != 1 || g[1].Width != 1 {
		t.Errorf("unexpected second grapheme: %+v", g[1])
	}
}

func TestIterateCombiningMarkAttaches(t *testing.T) {
	// "e" + combining acute accent (U+0301) forms one cluster.
	s := "éx"
	g := Iterate(s)
	if len(g) != 2 {
		t.Fatalf("expected 2 clusters, got %d: %+v", len(g), g)
	}
	if g[0].Text != "é" {
		t.Errorf("expected combined cluster, got %q", g[0].Text)
	}
	if g[0].Width != 1 {
		t.Errorf("expected width 1 for base+combining cluster, got %d", g[0].Width)
	}
	if g[1].Text != "x" || g[1].ByteOffset != len("é") {
		t.Errorf("unexpected second cluster: %+v", g[1])
	}
}

func TestIterateInvalidUTF8IsWidthOneAndStandalone(t *testing.T) {
	s := "a\xffb"
	g := Iterate(s)
	if len(g) != 3 {
		t.Fatalf("expected 3 clusters, got %d: %+v", len(g), g)
	}
	if g[1].Text != "\xff" || g[1].Width != 1 {
		t.Errorf("expected standalone invalid byte cluster, got %+v", g[1])
	}
}

func TestColumnByteIndex(t *testing.T) {
	wide := "一"
	s := "ab" + wide + "cd" // display columns: a=0 b=1 <wide>=2..3 c=4 d=5
	cAt := 2 + len(wide)
	dAt := cAt + 1
	cases := []struct {
		col  int
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, cAt}, // column 3 is inside the wide glyph; the next grapheme starting at/after it is "c"
		{4, cAt},
		{5, dAt},
		{100, len(s)},
	}
	for _, c := range cases {
		if got := ColumnByteIndex(s, c.col); got != c.want {
			t.Errorf("ColumnByteIndex(%q, %d) = %d, want %d", s, c.col, got, c.want)
		}
	}
}

func TestColumnByteIndexEmpty(t *testing.T) {
	if got := ColumnByteIndex("", 0); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	if got := ColumnByteIndex("", 5); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}
