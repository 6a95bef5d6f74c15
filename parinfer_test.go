package parinfer

import "testing"

func TestProcess_ConcreteScenarios(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		text     string
		wantText string
		success  bool
		errName  ErrorName
		errX     Column
		errLine  LineNumber
	}{
		{
			name:     "indent mode closes open parens",
			mode:     ModeIndent,
			text:     "(def foo\n  bar",
			wantText: "(def foo\n  bar)",
			success:  true,
		},
		{
			name:     "indent mode nested",
			mode:     ModeIndent,
			text:     "(let [x 1]\n  (+ x 2",
			wantText: "(let [x 1]\n  (+ x 2))",
			success:  true,
		},
		{
			name:     "paren mode infers indent",
			mode:     ModeParen,
			text:     "(def foo\nbar)",
			wantText: "(def foo\n bar)",
			success:  true,
		},
		{
			name:     "smart mode closes open parens",
			mode:     ModeSmart,
			text:     "(def foo\n  bar",
			wantText: "(def foo\n  bar)",
			success:  true,
		},
		{
			name:    "paren mode rejects stray closer",
			mode:    ModeParen,
			text:    ")",
			success: false,
			errName: ErrUnmatchedCloseParen,
			errX:    0,
			errLine: 0,
		},
		{
			name:    "indent mode leading close paren",
			mode:    ModeIndent,
			text:    ")abc",
			success: false,
			errName: ErrLeadingCloseParen,
			errX:    0,
			errLine: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ans, err := Process(Request{Mode: tt.mode, Text: tt.text})
			if err != nil {
				t.Fatalf("Process returned unexpected error: %v", err)
			}
			if ans.Success != tt.success {
				t.Fatalf("Success = %v, want %v (err=%v)", ans.Success, tt.success, ans.Err)
			}
			if tt.success {
				if ans.Text != tt.wantText {
					t.Errorf("Text = %q, want %q", ans.Text, tt.wantText)
				}
				return
			}
			if ans.Err == nil {
				t.Fatalf("Err = nil, want name %q", tt.errName)
			}
			if ans.Err.Name != tt.errName {
				t.Errorf("Err.Name = %q, want %q", ans.Err.Name, tt.errName)
			}
			if ans.Err.X != tt.errX || ans.Err.LineNo != tt.errLine {
				t.Errorf("Err position = (%d,%d), want (%d,%d)", ans.Err.X, ans.Err.LineNo, tt.errX, tt.errLine)
			}
		})
	}
}

func TestProcess_UnknownMode(t *testing.T) {
	_, err := Process(Request{Mode: Mode("bogus"), Text: "()"})
	if err == nil {
		t.Fatal("expected an error for an unrecognized mode")
	}
	if _, ok := err.(*ErrUnknownMode); !ok {
		t.Errorf("error type = %T, want *ErrUnknownMode", err)
	}
}

func TestProcess_PrevTextSynthesizesChange(t *testing.T) {
	prev := "(foo)"
	ans, err := Process(Request{
		Mode: ModeParen,
		Text: "(foobar)",
		Options: Options{
			PrevText: &prev,
		},
	})
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}
	if !ans.Success {
		t.Fatalf("Success = false, err=%v", ans.Err)
	}
	if ans.Text != "(foobar)" {
		t.Errorf("Text = %q, want %q", ans.Text, "(foobar)")
	}
}

func TestProcess_ReturnParens(t *testing.T) {
	ans, err := Process(Request{
		Mode: ModeParen,
		Text: "(a (b) c)",
		Options: Options{
			ReturnParens: true,
		},
	})
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}
	if !ans.Success {
		t.Fatalf("Success = false, err=%v", ans.Err)
	}
	if len(ans.Parens) != 1 {
		t.Fatalf("Parens root count = %d, want 1", len(ans.Parens))
	}
	root := ans.Parens[0]
	if root.Ch != '(' || root.X != 0 {
		t.Errorf("root paren = %c@%d, want (@0", root.Ch, root.X)
	}
	if len(root.Children) != 1 {
		t.Fatalf("root children = %d, want 1", len(root.Children))
	}
	if root.Closer == nil || root.Closer.X != 8 {
		t.Errorf("root closer = %+v, want x=8", root.Closer)
	}
}
