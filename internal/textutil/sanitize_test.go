package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"normal name", "normal name"},
		{"a/b\\c:d", "a-b-c-d"},
		{"what?\"<>|", "what"},
		{"  padded  ", "padded"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SanitizeFileName(tc.in); got != tc.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeToken(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"session1", "session1"},
		{"Weekly Standup!", "Weekly_Standup_"},
		{"a.b c", "a_b_c"},
		{"keep-this_one", "keep-this_one"},
		{"a/b:c*d", "a-b-c-d"},
		{"what?\"<>|now", "whatnow"},
		{"", "recording"},
		{"???", "recording"},
	}
	for _, tc := range cases {
		if got := SanitizeToken(tc.in); got != tc.want {
			t.Errorf("SanitizeToken(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
