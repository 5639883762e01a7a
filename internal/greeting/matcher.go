package greeting

import "strings"

// Matcher answers short conversational courtesies (greetings, thanks,
// acknowledgements) from fixed per-language tables, so trivial exchanges
// never reach the generation backend nor pollute session history.
type Matcher struct {
	tables map[string]map[string]string
}

// NewMatcher builds a matcher over per-language phrase→reply tables. The
// tables are treated as immutable after construction; adding a language is a
// data change, not a code change.
func NewMatcher(tables map[string]map[string]string) *Matcher {
	copied := make(map[string]map[string]string, len(tables))
	for lang, table := range tables {
		t := make(map[string]string, len(table))
		for phrase, reply := range table {
			t[Normalize(phrase)] = reply
		}
		copied[lang] = t
	}
	return &Matcher{tables: copied}
}

// Match reports the canned reply for question in the given language. Matching
// is exact after normalization; a near-miss falls through to the full
// pipeline.
func (m *Matcher) Match(lang, question string) (string, bool) {
	table, ok := m.tables[lang]
	if !ok {
		return "", false
	}
	reply, ok := table[Normalize(question)]
	return reply, ok
}

// Normalize lowercases, trims surrounding whitespace and strips trailing
// punctuation so "Merci !" and "merci" hit the same table entry.
func Normalize(s string) string {
	return strings.TrimRight(strings.ToLower(strings.TrimSpace(s)), ".,;!? ")
}

// DefaultTables returns the built-in greeting tables for the supported
// languages.
func DefaultTables() map[string]map[string]string {
	return map[string]map[string]string{
		"fr": {
			"merci":          "De rien !",
			"merci beaucoup": "Avec plaisir !",
			"merci bien":     "Je vous en prie !",
			"bonjour":        "Bonjour ! Comment puis-je vous aider ?",
			"bonsoir":        "Bonsoir ! Comment puis-je vous aider ?",
			"salut":          "Salut ! Comment puis-je vous aider ?",
			"coucou":         "Coucou ! Comment puis-je vous aider ?",
			"au revoir":      "Au revoir !",
			"à bientôt":      "À bientôt !",
			"super":          "Ravi de l'entendre !",
			"top":            "Parfait !",
			"bien":           "Parfait !",
			"génial":         "Super !",
			"excellent":      "Parfait !",
			"ok":             "Très bien !",
			"parfait":        "Parfait !",
			"cool":           "Cool !",
		},
		"en": {
			"thanks":              "You're welcome!",
			"thank you":           "You're welcome!",
			"thank you very much": "You're welcome!",
			"hello":               "Hello! How can I help you?",
			"hi":                  "Hi! How can I help you?",
			"hey":                 "Hey! How can I help you?",
			"good morning":        "Good morning! How can I help you?",
			"good afternoon":      "Good afternoon! How can I help you?",
			"good evening":        "Good evening! How can I help you?",
			"bye":                 "Goodbye!",
			"goodbye":             "Goodbye!",
			"see you":             "See you soon!",
			"super":               "Glad to hear it!",
			"top":                 "Perfect!",
			"good":                "Great!",
			"awesome":             "Awesome!",
			"great":               "Great!",
			"ok":                  "Alright!",
			"perfect":             "Perfect!",
			"cool":                "Cool!",
		},
	}
}
