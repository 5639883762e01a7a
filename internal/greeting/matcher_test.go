package greeting

import "testing"

func TestMatcherCoversEveryPhrase(t *testing.T) {
	tables := DefaultTables()
	m := NewMatcher(tables)

	for lang, table := range tables {
		for phrase, want := range table {
			got, ok := m.Match(lang, phrase)
			if !ok {
				t.Fatalf("lang %s: expected match for %q", lang, phrase)
			}
			if got != want {
				t.Fatalf("lang %s phrase %q: expected %q, got %q", lang, phrase, want, got)
			}
		}
	}
}

func TestMatcherNormalization(t *testing.T) {
	m := NewMatcher(DefaultTables())

	cases := []struct {
		lang     string
		question string
		want     string
	}{
		{"fr", "Merci", "De rien !"},
		{"fr", "  merci  ", "De rien !"},
		{"fr", "merci !", "De rien !"},
		{"fr", "MERCI BEAUCOUP...", "Avec plaisir !"},
		{"en", "Thanks!!", "You're welcome!"},
		{"en", "hello?", "Hello! How can I help you?"},
	}
	for _, c := range cases {
		got, ok := m.Match(c.lang, c.question)
		if !ok {
			t.Fatalf("expected match for %q", c.question)
		}
		if got != c.want {
			t.Fatalf("question %q: expected %q, got %q", c.question, c.want, got)
		}
	}
}

func TestMatcherNearMissFallsThrough(t *testing.T) {
	m := NewMatcher(DefaultTables())

	// Substrings and near-misses must not match.
	for _, question := range []string{
		"merci pour tout",
		"hello there",
		"un grand merci",
		"goodbye forever",
	} {
		if reply, ok := m.Match("fr", question); ok {
			t.Fatalf("question %q: expected no match, got %q", question, reply)
		}
		if reply, ok := m.Match("en", question); ok {
			t.Fatalf("question %q: expected no match, got %q", question, reply)
		}
	}
}

func TestMatcherUnknownLanguage(t *testing.T) {
	m := NewMatcher(DefaultTables())
	if _, ok := m.Match("de", "hallo"); ok {
		t.Fatalf("expected no match for unknown language")
	}
}
