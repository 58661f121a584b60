package diag

import (
	"testing"
)

func TestError(t *testing.T) {
	setCulpritMarkers(t, "<", ">")
	setMessageMarkers(t, "{", "}")

	err := &Error{
		Type:    "syntax error",
		Message: "bad list",
		Context: *contextInParen("[test]", "x = (y)"),
	}

	wantErrorString := "syntax error: [test]:1:5: bad list"
	if got := err.Error(); got != wantErrorString {
		t.Errorf("Error() -> %q, want %q", got, wantErrorString)
	}

	wantRanging := Ranging{From: 4, To: 7}
	if got := err.Range(); got != wantRanging {
		t.Errorf("Range() -> %v, want %v", got, wantRanging)
	}

	if got := err.Line(); got != 1 {
		t.Errorf("Line() -> %v, want 1", got)
	}

	// Type is capitalized in return value of Show
	wantShow := dedent(`
		Syntax error: {bad list}
		  [test], line 1: x = <(y)>`)
	if got := err.Show(""); got != wantShow {
		t.Errorf("Show() -> %q, want %q", got, wantShow)
	}
}
