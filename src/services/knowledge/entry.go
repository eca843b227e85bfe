// Package knowledge implements the canned-response engine behind the HEX
// HUSTLER AI assistant. Replies are selected by ordered keyword matching
// against a static, embedded knowledge base; nothing is generated or fetched.
package knowledge

// MotivationSeparator joins an answer's response and motivation texts when a
// bot message is composed.
const MotivationSeparator = "\n\n💡 "

// Answer is one canned (response, motivation) pair.
type Answer struct {
	Response   string
	Motivation string
}

// Text returns the full bot message text for the answer.
func (a Answer) Text() string {
	return a.Response + MotivationSeparator + a.Motivation
}

// Entry pairs a keyword predicate with its canned answer. The predicate
// matches when the lowercased input contains any of the keywords; an entry
// with no keywords matches everything and serves as the fallback.
type Entry struct {
	Topic    string
	Keywords []string
	Answer   Answer
}
