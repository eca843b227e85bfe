package knowledge

import "strings"

// Match maps free-text input to a canned answer. The input is lowercased and
// the entries are tested in declaration order; the first entry whose predicate
// matches wins, and the final catch-all entry guarantees a result for any
// input. Match is pure: same input, same answer.
func Match(input string) Answer {
	lowered := strings.ToLower(input)
	for _, entry := range Base {
		if entry.matches(lowered) {
			return entry.Answer
		}
	}
	// Unreachable while Base keeps its catch-all last entry.
	return Base[len(Base)-1].Answer
}

func (e Entry) matches(lowered string) bool {
	if len(e.Keywords) == 0 {
		return true
	}
	for _, keyword := range e.Keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
