package engine

import (
	"testing"

	"github.com/dshills/parinfer-go/internal/model"
)

func run(mode model.Mode, smart bool, text string) model.Answer {
	return Run(text, model.Options{}, mode, smart)
}

func TestRun_IndentModeClosesOpenParens(t *testing.T) {
	ans := run(model.ModeIndent, false, "(def foo\n  bar")
	if !ans.Success {
		t.Fatalf("Success = false, err=%v", ans.Err)
	}
	if want := "(def foo\n  bar)"; ans.Text != want {
		t.Errorf("Text = %q, want %q", ans.Text, want)
	}
}

func TestRun_ParenModeInfersIndent(t *testing.T) {
	ans := run(model.ModeParen, false, "(def foo\nbar)")
	if !ans.Success {
		t.Fatalf("Success = false, err=%v", ans.Err)
	}
	if want := "(def foo\n bar)"; ans.Text != want {
		t.Errorf("Text = %q, want %q", ans.Text, want)
	}
}

func TestRun_IdentityOnAlreadyBalancedText(t *testing.T) {
	text := "(defn f [x]\n  (+ x 1))"
	ans := run(model.ModeIndent, false, text)
	if !ans.Success {
		t.Fatalf("Success = false, err=%v", ans.Err)
	}
	if ans.Text != text {
		t.Errorf("Text = %q, want unchanged %q", ans.Text, text)
	}
}

func TestRun_ParenModeIdempotentAfterIndentMode(t *testing.T) {
	first := run(model.ModeIndent, false, "(let [x 1]\n  (+ x 2")
	if !first.Success {
		t.Fatalf("indent pass failed: %v", first.Err)
	}
	second := run(model.ModeParen, false, first.Text)
	if !second.Success {
		t.Fatalf("paren pass failed: %v", second.Err)
	}
	if second.Text != first.Text {
		t.Errorf("paren-mode pass changed stable output: %q -> %q", first.Text, second.Text)
	}
}

func TestRun_TabsReplacedWithSpaces(t *testing.T) {
	ans := run(model.ModeIndent, false, "(foo\n\t(bar)")
	if !ans.Success {
		t.Fatalf("Success = false, err=%v", ans.Err)
	}
	for i, r := range ans.Text {
		if r == '\t' {
			t.Fatalf("output still contains a tab at byte %d: %q", i, ans.Text)
		}
	}
}

func TestRun_UnclosedQuoteFails(t *testing.T) {
	ans := run(model.ModeIndent, false, "(foo \"bar)")
	if ans.Success {
		t.Fatalf("expected failure, got success with text %q", ans.Text)
	}
	if ans.Err.Name != model.ErrUnclosedQuote {
		t.Errorf("Err.Name = %q, want %q", ans.Err.Name, model.ErrUnclosedQuote)
	}
}

func TestRun_QuoteDangerInComment(t *testing.T) {
	ans := run(model.ModeIndent, false, "(foo) ; a \"dangling quote\nbar")
	if ans.Success {
		t.Fatalf("expected failure, got success with text %q", ans.Text)
	}
	if ans.Err.Name != model.ErrQuoteDanger {
		t.Errorf("Err.Name = %q, want %q", ans.Err.Name, model.ErrQuoteDanger)
	}
}

func TestRun_EOLBackslashFails(t *testing.T) {
	ans := run(model.ModeIndent, false, "(foo \\\nbar)")
	if ans.Success {
		t.Fatalf("expected failure, got success with text %q", ans.Text)
	}
	if ans.Err.Name != model.ErrEOLBackslash {
		t.Errorf("Err.Name = %q, want %q", ans.Err.Name, model.ErrEOLBackslash)
	}
}

func TestRun_UnclosedParenInParenMode(t *testing.T) {
	ans := run(model.ModeParen, false, "(foo")
	if ans.Success {
		t.Fatalf("expected failure, got success with text %q", ans.Text)
	}
	if ans.Err.Name != model.ErrUnclosedParen {
		t.Errorf("Err.Name = %q, want %q", ans.Err.Name, model.ErrUnclosedParen)
	}
}

func TestRun_ForceBalanceStripsLeadingCloseParen(t *testing.T) {
	opts := model.Options{ForceBalance: true}
	ans := Run(")abc", opts, model.ModeIndent, false)
	if !ans.Success {
		t.Fatalf("Success = false, err=%v", ans.Err)
	}
	if ans.Text != "abc" {
		t.Errorf("Text = %q, want %q", ans.Text, "abc")
	}
}

func TestRun_PartialResultReturnsWorkingTextOnFailure(t *testing.T) {
	// The dedent on line 2 closes the outer paren (mutating line 1)
	// before the unclosed quote on line 2 itself fails the call.
	text := "(foo\n  bar\n\"baz"

	withPartial := Run(text, model.Options{PartialResult: true}, model.ModeIndent, false)
	if withPartial.Success {
		t.Fatalf("expected failure, got success")
	}
	if withPartial.Text == text {
		t.Errorf("partial_result Text should reflect the already-applied closing-paren edit, got unchanged %q", withPartial.Text)
	}

	withoutPartial := Run(text, model.Options{}, model.ModeIndent, false)
	if withoutPartial.Success {
		t.Fatalf("expected failure, got success")
	}
	if withoutPartial.Text != text {
		t.Errorf("Text = %q, want original input %q", withoutPartial.Text, text)
	}
}
