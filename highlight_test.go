package wordmark

import "testing"

func TestHighlightMatches(t *testing.T) {
	h := Highlight{Word: "Error", IgnoreCase: true}
	if !h.Matches("error") || !h.Matches("ERROR") {
		t.Fail()
	}

	h.IgnoreCase = false
	if h.Matches("error") || !h.Matches("Error") {
		t.Fail()
	}
}

func TestKey(t *testing.T) {
	a := Highlight{Word: "foo", Color: "#ffff99"}.Key()
	b := Highlight{Word: "foo", Color: "#ccffcc"}.Key()
	c := Highlight{Word: "foo", IgnoreCase: true}.Key()

	if a != b || a == c {
		t.Fail()
	}
	if a.String() != "foo" || c.String() != "foo_i" {
		t.Fail()
	}
}

func TestIsHighlighted(t *testing.T) {
	list := []Highlight{
		{Word: "Error", IgnoreCase: true},
		{Word: "TODO"},
	}

	testcases := []struct {
		selection string
		want      bool
	}{
		{"error", true},
		{"  ERROR \n", true},
		{"TODO", true},
		{"todo", false},
		{"", false},
		{"   ", false},
		{"Errors", false},
	}

	for _, tc := range testcases {
		if got := IsHighlighted(tc.selection, list); got != tc.want {
			t.Errorf("IsHighlighted(%q) = %v, want %v", tc.selection, got, tc.want)
		}
	}
}

func TestValidateHexColor(t *testing.T) {
	for _, ok := range []string{"#ff0000", "#ABCDEF", ""} {
		if msg := ValidateHexColor(ok); msg != "" {
			t.Errorf("%q rejected: %s", ok, msg)
		}
	}
	for _, bad := range []string{"ff0000", "#fff", "#ff00zz", "red", "#ff00000"} {
		if ValidateHexColor(bad) == "" {
			t.Errorf("%q accepted", bad)
		}
	}
}
