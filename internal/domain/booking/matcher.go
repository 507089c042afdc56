package booking

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// MatchThreshold is the minimum Jaccard score for a confident match.
// Below it the matcher returns nothing rather than a best-available guess,
// trading recall for precision so a vague utterance never books the wrong
// event.
const MatchThreshold = 0.25

// Candidate is the minimal view of an event the matcher scores against.
type Candidate struct {
	ID   uuid.UUID
	Name string
}

// Match pairs the winning candidate with its similarity score in [0,1].
type Match struct {
	Candidate Candidate
	Score     float64
}

// ResolveEvent resolves a free-text event name to the best-scoring candidate
// using token-set Jaccard similarity over normalized names. Ties keep the
// first-encountered candidate; scores below MatchThreshold return nil.
func ResolveEvent(query string, candidates []Candidate) *Match {
	queryTokens := tokenize(query)
	if len(queryTokens) == 0 {
		return nil
	}

	var best *Match
	for _, c := range candidates {
		score := jaccard(queryTokens, tokenize(c.Name))
		if best == nil || score > best.Score {
			best = &Match{Candidate: c, Score: score}
		}
	}

	if best == nil || best.Score < MatchThreshold {
		return nil
	}
	return best
}

// Normalize lowercases, strips non-alphanumeric runes (keeping spaces),
// collapses whitespace runs and trims the ends. The matcher applies it
// identically to queries and candidate names.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func tokenize(s string) map[string]struct{} {
	fields := strings.Fields(Normalize(s))
	tokens := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		tokens[f] = struct{}{}
	}
	return tokens
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	intersection := 0
	for t := range a {
		if _, ok := b[t]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
