// Package matcher decides whether a free-text guess should be accepted for a short canonical answer.
//
// The checks run from cheapest to loosest and the first one that matches wins:
// exact, normalized, stem, substring containment and word-set coverage.
package matcher

import (
	"sort"
	"strings"
	"unicode"
)

// minContainLen is the length the shorter side must exceed before containment counts.
const minContainLen = 3

var articles = map[string]struct{}{
	"the": {},
	"a":   {},
	"an":  {},
}

// suffixes sorted longest first; ties keep their listed order.
var suffixes = func() []string {
	list := []string{"ation", "tion", "ing", "ed", "es", "ment", "ly", "er", "est", "ness", "ion", "ate", "s", "e"}
	sort.SliceStable(list, func(i, j int) bool { return len(list[i]) > len(list[j]) })
	return list
}()

var stripped = strings.NewReplacer(
	"-", "", "_", "",
	".", "", ",", "", "!", "", "?", "", ";", "", ":", "", "'", "", `"`, "",
)

// IsEquivalent reports whether userAnswer should be accepted for canonicalAnswer.
func IsEquivalent(userAnswer, canonicalAnswer string) bool {
	user := strings.ToLower(strings.TrimSpace(userAnswer))
	canonical := strings.ToLower(strings.TrimSpace(canonicalAnswer))
	if user == "" || canonical == "" {
		return false
	}

	if user == canonical {
		return true
	}

	normUser, normCanonical := Normalize(user), Normalize(canonical)
	if normUser == "" || normCanonical == "" {
		return false
	}

	if normUser == normCanonical {
		return true
	}

	if stemUser, stemCanonical := Stem(normUser), Stem(normCanonical); stemUser == stemCanonical &&
		len(stemUser) > minContainLen && len(stemCanonical) > minContainLen {
		return true
	}

	if contains(normUser, normCanonical) {
		return true
	}

	return coversWords(words(user), words(canonical))
}

// Normalize lowercases s, drops a leading article and removes whitespace and punctuation.
func Normalize(s string) string {
	s = stripLeadingArticle(strings.ToLower(strings.TrimSpace(s)))
	s = stripped.Replace(s)

	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Stem strips the first suffix that leaves a stem longer than the suffix plus two.
func Stem(word string) string {
	word = strings.ToLower(word)
	for _, suffix := range suffixes {
		if !strings.HasSuffix(word, suffix) {
			continue
		}
		if remaining := len(word) - len(suffix); remaining > len(suffix)+2 {
			return word[:remaining]
		}
	}

	return word
}

func stripLeadingArticle(s string) string {
	first, rest, found := strings.Cut(s, " ")
	if !found {
		return s
	}
	if _, ok := articles[first]; ok {
		return strings.TrimSpace(rest)
	}

	return s
}

// contains is containment in either direction, guarded against short strings.
// Word-set coverage compares single words and does not apply the guard.
func contains(a, b string) bool {
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) <= minContainLen {
		return false
	}

	return strings.Contains(longer, shorter)
}

// words splits s on whitespace, drops articles and strips punctuation from each word.
func words(s string) []string {
	fields := strings.Fields(strings.ToLower(s))
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		if _, ok := articles[field]; ok {
			continue
		}
		if w := stripped.Replace(field); w != "" {
			out = append(out, w)
		}
	}

	return out
}

func coversWords(user, canonical []string) bool {
	if len(user) == 0 || len(canonical) == 0 {
		return false
	}

	for _, want := range canonical {
		if !hasCorrespondingWord(user, want) {
			return false
		}
	}

	return true
}

func hasCorrespondingWord(candidates []string, want string) bool {
	wantStem := Stem(want)
	for _, got := range candidates {
		if got == want || Stem(got) == wantStem || strings.Contains(got, want) || strings.Contains(want, got) {
			return true
		}
	}

	return false
}
