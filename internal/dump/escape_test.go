package dump

import "testing"

func TestEscape_SafeInputUnchanged(t *testing.T) {
	in := "androidx.compose.material3.Text"
	if got := Escape(in); got != in {
		t.Errorf("expected %q unchanged, got %q", in, got)
	}
}

func TestEscape_Quote(t *testing.T) {
	if got := Escape(`a"b`); got != `a\"b` {
		t.Errorf(`expected a\"b, got %q`, got)
	}
}

func TestEscape_Backslash(t *testing.T) {
	if got := Escape(`a\b`); got != `a\\b` {
		t.Errorf(`expected a\\b, got %q`, got)
	}
}

func TestEscape_BackslashBeforeQuote(t *testing.T) {
	// A pre-escaped quote must not be double-escaped out of shape:
	// \" becomes \\\" (escaped backslash, then escaped quote).
	if got := Escape(`\"`); got != `\\\"` {
		t.Errorf(`expected \\\", got %q`, got)
	}
}

func TestEscape_ControlCharacters(t *testing.T) {
	if got := Escape("a\nb\rc\td"); got != `a\nb\rc\td` {
		t.Errorf("unexpected escape result: %q", got)
	}
}
