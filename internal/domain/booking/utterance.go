package booking

var affirmativeTokens = map[string]struct{}{
	"yes":     {},
	"yeah":    {},
	"yep":     {},
	"sure":    {},
	"confirm": {},
	"ok":      {},
	"okay":    {},
}

var negativeTokens = map[string]struct{}{
	"no":     {},
	"nope":   {},
	"cancel": {},
	"stop":   {},
}

// IsAffirmative reports whether the utterance contains a confirmation token.
// Negative tokens win when both appear ("no, not yet... ok?" must not book).
func IsAffirmative(utterance string) bool {
	if IsNegative(utterance) {
		return false
	}
	return containsAny(utterance, affirmativeTokens)
}

func IsNegative(utterance string) bool {
	return containsAny(utterance, negativeTokens)
}

func containsAny(utterance string, tokens map[string]struct{}) bool {
	for t := range tokenize(utterance) {
		if _, ok := tokens[t]; ok {
			return true
		}
	}
	return false
}
