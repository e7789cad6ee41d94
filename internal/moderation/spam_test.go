package moderation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreCleanSubmission(t *testing.T) {
	report := Score("Acme Robotics", "We build warehouse robots for mid-size logistics companies.")

	assert.Zero(t, report.Score)
	assert.Empty(t, report.Reasons)
	assert.Equal(t, ClassificationClean, report.Classification())
}

func TestScoreLongName(t *testing.T) {
	report := Score(strings.Repeat("x", 51), "A perfectly reasonable description.")

	assert.Equal(t, 1, report.Score)
	assert.Contains(t, report.Reasons, "Excessively long name")
}

func TestScoreShortDescription(t *testing.T) {
	report := Score("Acme", "too short")

	assert.Equal(t, 1, report.Score)
	assert.Equal(t, ClassificationPotentialSpam, report.Classification())
}

func TestScoreEmptyDescriptionNotPenalized(t *testing.T) {
	report := Score("Acme", "")

	assert.Zero(t, report.Score)
}

func TestScoreExcessiveURLs(t *testing.T) {
	desc := "Check https://a.example and https://b.example and www.c.example now"
	report := Score("Acme", desc)

	assert.GreaterOrEqual(t, report.Score, 2)
	assert.Contains(t, report.Reasons, "Excessive URLs in description")

	// Two URLs stay under the threshold.
	under := Score("Acme", "See https://a.example and https://b.example for details")
	assert.NotContains(t, under.Reasons, "Excessive URLs in description")
}

func TestScoreRepetitiveContent(t *testing.T) {
	block := "buy cheap pills now "
	report := Score("Acme", strings.Repeat(block, 3))

	assert.GreaterOrEqual(t, report.Score, 2)
	assert.Contains(t, report.Reasons, "Repetitive content in description")
}

func TestScoreRandomCharacters(t *testing.T) {
	report := Score("Acme", strings.Repeat("a", 20))

	assert.GreaterOrEqual(t, report.Score, 2)
	assert.Contains(t, report.Reasons, "Random character sequence in description")
	assert.Equal(t, ClassificationPotentialSpam, report.Classification())
}

func TestScoreRepetitiveName(t *testing.T) {
	report := Score("Buy Buy Buy Buy", "A perfectly reasonable description.")

	assert.GreaterOrEqual(t, report.Score, 2)
	assert.Contains(t, report.Reasons, "Repetitive name")
}

func TestScoreMonotonic(t *testing.T) {
	base := Score("Acme", strings.Repeat("a", 20))
	worse := Score("Acme", strings.Repeat("a", 20)+" https://a.x https://b.x https://c.x")

	assert.GreaterOrEqual(t, worse.Score, base.Score)
}

func TestClassifyThresholds(t *testing.T) {
	assert.Equal(t, ClassificationClean, Classify(0))
	assert.Equal(t, ClassificationPotentialSpam, Classify(1))
	assert.Equal(t, ClassificationPotentialSpam, Classify(2))
	assert.Equal(t, ClassificationSpam, Classify(3))
	assert.Equal(t, ClassificationSpam, Classify(7))
}

func TestHasRepeatedBlock(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"short", "abcabcabc", false},
		{"three long repeats", strings.Repeat("abcdefghijklmnop", 3), true},
		{"two repeats only", strings.Repeat("abcdefghijklmnop", 2), false},
		{"repeats not contiguous", "abcdefghijklmnop xx abcdefghijklmnop xx abcdefghijklmnop", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, hasRepeatedBlock(tc.in, repeatedBlockLen, repeatedBlockCount), "input %q", tc.in)
		})
	}
}

func TestHasRepeatedWord(t *testing.T) {
	assert.True(t, hasRepeatedWord("buy buy buy", 3))
	assert.True(t, hasRepeatedWord("Buy BUY buy now", 3))
	assert.False(t, hasRepeatedWord("buy buy now", 3))
	assert.False(t, hasRepeatedWord("", 3))
}
