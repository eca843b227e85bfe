package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchSelectsByTopic(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTopic string
	}{
		{
			name:      "skills question",
			input:     "what technologies do you work with",
			wantTopic: "skills",
		},
		{
			// "about your" contains the "about you" keyword, so the about
			// entry wins over skills by declaration order.
			name:      "about shadows skills",
			input:     "Tell me about your skills",
			wantTopic: "about",
		},
		{
			name:      "case insensitive",
			input:     "WHO ARE YOU exactly?",
			wantTopic: "about",
		},
		{
			name:      "substring match inside a word sequence",
			input:     "any react native tips?",
			wantTopic: "mobile",
		},
		{
			name:      "cloud keyword",
			input:     "how do I handle deployment",
			wantTopic: "cloud",
		},
		{
			name:      "unknown topic falls back to default",
			input:     "what is the meaning of life",
			wantTopic: "default",
		},
		{
			name:      "empty input falls back to default",
			input:     "",
			wantTopic: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.input)
			want := entryByTopic(t, tt.wantTopic)
			assert.Equal(t, want.Answer, got)
		})
	}
}

// Declaration order is the tie-break: an input hitting several predicates must
// resolve to the earliest entry.
func TestMatchPriorityOrder(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTopic string
	}{
		{
			name:      "java beats database",
			input:     "java database question",
			wantTopic: "languages",
		},
		{
			name:      "web beats database on shared backend keyword",
			input:     "backend tips please",
			wantTopic: "web",
		},
		{
			name:      "skills beats career",
			input:     "what skills should I learn to start a career",
			wantTopic: "skills",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.input)
			want := entryByTopic(t, tt.wantTopic)
			assert.Equal(t, want.Answer, got)
		})
	}
}

func TestMatchIsTotalAndDeterministic(t *testing.T) {
	inputs := []string{"", "   ", "☕", "blockchain?!", strings.Repeat("x", 500)}
	for _, input := range inputs {
		first := Match(input)
		second := Match(input)
		assert.NotEmpty(t, first.Response, "input %q", input)
		assert.NotEmpty(t, first.Motivation, "input %q", input)
		assert.Equal(t, first, second, "input %q", input)
	}
}

func TestBaseShape(t *testing.T) {
	require.NotEmpty(t, Base)

	last := Base[len(Base)-1]
	assert.Empty(t, last.Keywords, "last entry must be the catch-all")

	for i, entry := range Base {
		if i < len(Base)-1 {
			assert.NotEmpty(t, entry.Keywords, "entry %q", entry.Topic)
		}
		for _, keyword := range entry.Keywords {
			assert.Equal(t, strings.ToLower(keyword), keyword,
				"keyword %q in entry %q must be lowercase", keyword, entry.Topic)
		}
		assert.NotEmpty(t, entry.Answer.Response, "entry %q", entry.Topic)
		assert.NotEmpty(t, entry.Answer.Motivation, "entry %q", entry.Topic)
	}
}

func TestAnswerText(t *testing.T) {
	a := Answer{Response: "resp", Motivation: "mot"}
	assert.Equal(t, "resp"+MotivationSeparator+"mot", a.Text())
}

func entryByTopic(t *testing.T, topic string) Entry {
	t.Helper()
	for _, entry := range Base {
		if entry.Topic == topic {
			return entry
		}
	}
	t.Fatalf("no entry with topic %q", topic)
	return Entry{}
}
