package slug

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercases", "OctoCat", "octocat"},
		{"spaces to hyphen", "foo bar", "foo-bar"},
		{"whitespace run", "foo \t\n bar", "foo-bar"},
		{"punctuation stripped", "Foo  Bar!", "foo-bar"},
		{"hyphen runs collapse", "a---b", "a-b"},
		{"trims edges", "  -hello-  ", "hello"},
		{"underscore kept", "snake_case", "snake_case"},
		{"digits kept", "Go 1.25", "go-125"},
		{"non-ascii dropped", "café au lait", "caf-au-lait"},
		{"nbsp is whitespace", "a\u00a0b", "a-b"},
		{"ideographic space", "a\u3000b", "a-b"},
		{"next line is not whitespace", "a\u0085b", "ab"},
		{"only punctuation", "?!.,", ""},
		{"hyphen around stripped chars", "a - ! - b", "a-b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"", "  Octocat  ", "Foo  Bar!", "--a--b--", "é-é", "a\tb\nc", "日本語 search", "x_y-z",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize(Normalize(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestNormalize_EquivalentQueriesShareKey(t *testing.T) {
	same := [][2]string{
		{"Foo  Bar!", "foo-bar"},
		{"octocat", "  Octocat  "},
	}
	for _, pair := range same {
		if a, b := Normalize(pair[0]), Normalize(pair[1]); a != b {
			t.Fatalf("Normalize(%q) = %q, Normalize(%q) = %q, want equal", pair[0], a, pair[1], b)
		}
	}
	if Normalize("foo") == Normalize("bar") {
		t.Fatalf("Normalize(foo) == Normalize(bar)")
	}
}
