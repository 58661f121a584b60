package diag

import (
	"strings"
	"testing"
)

var contextTests = []struct {
	Name    string
	Context *Context
	Indent  string

	WantShow        string
	WantShowCompact string
	WantDescribe    string
}{
	{
		Name:    "single-line culprit",
		Context: contextInParen("[test]", "x = (bad)"),
		Indent:  "_",

		WantShow: lines(
			"[test], line 1:",
			"_x = <(bad)>",
		),
		WantShowCompact: "[test], line 1: x = <(bad)>",
		WantDescribe:    "[test]:1:5",
	},
	{
		Name:    "multi-line culprit",
		Context: contextInParen("[test]", "x = (bad\nbad)\nmore"),
		Indent:  "_",

		WantShow: lines(
			"[test], line 1-2:",
			"_x = <(bad>",
			"_<bad)>",
		),
		WantShowCompact: lines(
			"[test], line 1-2: x = <(bad>",
			"_                  <bad)>",
		),
		WantDescribe: "[test]:1:5",
	},
	{
		Name: "culprit on second line",
		Context: NewContext("[test]", "a\nb = c", Ranging{6, 7}),
		Indent:  "",

		WantShow: lines(
			"[test], line 2:",
			"b = <c>",
		),
		WantShowCompact: "[test], line 2: b = <c>",
		WantDescribe:    "[test]:2:5",
	},
	{
		Name: "trailing newline in culprit is removed",
		Context: NewContext("[test]", "x = bad\n", Ranging{4, 8}),
		Indent:  "_",

		WantShow: lines(
			"[test], line 1:",
			"_x = <bad>",
		),
		WantShowCompact: "[test], line 1: x = <bad>",
		WantDescribe:    "[test]:1:5",
	},
	{
		Name:    "empty culprit",
		Context: NewContext("[test]", "x = y", Ranging{4, 4}),

		WantShow: lines(
			"[test], line 1:",
			"x = <^>y",
		),
		WantShowCompact: "[test], line 1: x = <^>y",
		WantDescribe:    "[test]:1:5",
	},
	{
		Name:            "unknown culprit range",
		Context:         NewContext("[test]", "x", Ranging{-1, -1}),
		WantShow:        "[test], unknown position",
		WantShowCompact: "[test], unknown position",
		WantDescribe:    "[test], unknown position",
	},
	{
		Name:            "invalid culprit range",
		Context:         NewContext("[test]", "x", Ranging{2, 1}),
		WantShow:        "[test], invalid position 2-1",
		WantShowCompact: "[test], invalid position 2-1",
		WantDescribe:    "[test], invalid position 2-1",
	},
}

func TestContext(t *testing.T) {
	setCulpritMarkers(t, "<", ">")
	for _, test := range contextTests {
		t.Run(test.Name, func(t *testing.T) {
			if got := test.Context.Show(test.Indent); got != test.WantShow {
				t.Errorf("Show() -> %q, want %q", got, test.WantShow)
			}
			if got := test.Context.ShowCompact(test.Indent); got != test.WantShowCompact {
				t.Errorf("ShowCompact() -> %q, want %q", got, test.WantShowCompact)
			}
			if got := test.Context.Describe(); got != test.WantDescribe {
				t.Errorf("Describe() -> %q, want %q", got, test.WantDescribe)
			}
		})
	}
}

// Returns a Context with the given name and source, and a range for the part
// between ( and ).
func contextInParen(name, src string) *Context {
	return NewContext(name, src,
		Ranging{strings.Index(src, "("), strings.Index(src, ")") + 1})
}
