package change

import "testing"

func TestComputeIdentical(t *testing.T) {
	if _, ok := Compute("(foo bar)", "(foo bar)"); ok {
		t.Error("expected no change for identical text")
	}
}

func TestComputeSingleCharInsert(t *testing.T) {
	c, ok := Compute("(foo bar", "(foo bar)")
	if !ok {
		t.Fatal("expected a change")
	}
	if c.OldText != "" || c.NewText != ")" {
		t.Errorf("unexpected span: old=%q new=%q", c.OldText, c.NewText)
	}
	if c.LineNo != 0 || c.X != 8 {
		t.Errorf("unexpected position: line=%d x=%d", c.LineNo, c.X)
	}
}

func TestComputeMultiLine(t *testing.T) {
	prev := "(def foo\n  bar)"
	curr := "(def foo\n  baz)"
	c, ok := Compute(prev, curr)
	if !ok {
		t.Fatal("expected a change")
	}
	if c.LineNo != 1 {
		t.Errorf("expected line 1, got %d", c.LineNo)
	}
	if c.OldText != "r" || c.NewText != "z" {
		t.Errorf("unexpected span: old=%q new=%q", c.OldText, c.NewText)
	}
	if c.X != 4 {
		t.Errorf("expected column 4, got %d", c.X)
	}
}

func TestComputeSingleCharDelete(t *testing.T) {
	c, ok := Compute("(foo  bar)", "(foo bar)")
	if !ok {
		t.Fatal("expected a change")
	}
	if c.OldText != " " || c.NewText != "" {
		t.Errorf("unexpected span: old=%q new=%q", c.OldText, c.NewText)
	}
}

func TestComputeWholeReplace(t *testing.T) {
	c, ok := Compute("abc", "xyz")
	if !ok {
		t.Fatal("expected a change")
	}
	if c.OldText != "abc" || c.NewText != "xyz" {
		t.Errorf("unexpected span: old=%q new=%q", c.OldText, c.NewText)
	}
	if c.X != 0 || c.LineNo != 0 {
		t.Errorf("unexpected position: line=%d x=%d", c.LineNo, c.X)
	}
}

func TestComputeAppend(t *testing.T) {
	c, ok := Compute("abc", "abcdef")
	if !ok {
		t.Fatal("expected a change")
	}
	if c.OldText != "" || c.NewText != "def" {
		t.Errorf("unexpected span: old=%q new=%q", c.OldText, c.NewText)
	}
	if c.X != 3 {
		t.Errorf("expected column 3, got %d", c.X)
	}
}
