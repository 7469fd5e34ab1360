package fuzzy

import "testing"

func TestLevenshteinDistance(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"google", "google", 0},
		{"google", "gogle", 1},
		{"stripe", "strpie", 2},
		{"", "acme", 4},
	}
	for _, tc := range cases {
		if got := LevenshteinDistance(tc.a, tc.b); got != tc.want {
			t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	if !Match("goog", "Google LLC", 1) {
		t.Error("prefix should match")
	}
	if !Match("enginer", "Software Engineer", 2) {
		t.Error("one-typo word should match with threshold 2")
	}
	if Match("designer", "Software Engineer", 1) {
		t.Error("unrelated word should not match")
	}
	if !Match("", "anything", 1) {
		t.Error("empty query matches everything")
	}
}
