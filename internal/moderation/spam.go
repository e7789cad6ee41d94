// Package moderation holds the submission spam heuristic and the admin
// status workflow helpers. Scoring is pure and recomputed per request; at
// the current submission volume there is nothing worth caching.
package moderation

import (
	"regexp"
	"strings"
)

type Classification string

const (
	ClassificationClean         Classification = "clean"
	ClassificationPotentialSpam Classification = "potential_spam"
	ClassificationSpam          Classification = "spam"
)

const (
	maxNameLength      = 50
	minDescriptionLen  = 10
	urlThreshold       = 3
	repeatedBlockLen   = 15
	repeatedBlockCount = 3
	lowercaseRunLen    = 15
	repeatedWordCount  = 3
	spamScoreThreshold = 3
)

var (
	urlPattern          = regexp.MustCompile(`(?i)(https?://|www\.)[^\s]+`)
	lowercaseRunPattern = regexp.MustCompile(`[a-z]{15,}`)
)

// Report is the scoring output for one submission.
type Report struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

func (r Report) Classification() Classification {
	return Classify(r.Score)
}

// Score applies the pattern rules to a submission's name and description and
// sums the weights. Adding a qualifying match never lowers the score.
func Score(name, description string) Report {
	var report Report

	if len(name) > maxNameLength {
		report.add(1, "Excessively long name")
	}

	if description != "" && len(description) < minDescriptionLen {
		report.add(1, "Description too short")
	}

	if len(urlPattern.FindAllString(description, -1)) >= urlThreshold {
		report.add(2, "Excessive URLs in description")
	}

	if hasRepeatedBlock(description, repeatedBlockLen, repeatedBlockCount) {
		report.add(2, "Repetitive content in description")
	}

	if lowercaseRunPattern.MatchString(description) {
		report.add(2, "Random character sequence in description")
	}

	if hasRepeatedWord(name, repeatedWordCount) {
		report.add(2, "Repetitive name")
	}

	return report
}

// Classify buckets a score for review priority.
func Classify(score int) Classification {
	switch {
	case score >= spamScoreThreshold:
		return ClassificationSpam
	case score > 0:
		return ClassificationPotentialSpam
	default:
		return ClassificationClean
	}
}

func (r *Report) add(weight int, reason string) {
	r.Score += weight
	r.Reasons = append(r.Reasons, reason)
}

// hasRepeatedBlock reports whether any block of at least minLen characters
// repeats count times back to back. Go's regexp has no backreferences, so
// this walks candidate periods directly; descriptions are short enough that
// the quadratic worst case does not matter.
func hasRepeatedBlock(s string, minLen, count int) bool {
	if len(s) < minLen*count {
		return false
	}

	// A block of length p repeating count times starting at i means
	// s[j] == s[j+p] for every j in [i, i+p*(count-1)). For each candidate
	// period, find the longest such run; one period is O(n), so the whole
	// scan is O(n^2 / minLen).
	for period := minLen; period*count <= len(s); period++ {
		run := 0
		for j := 0; j+period < len(s); j++ {
			if s[j] == s[j+period] {
				run++
				if run >= period*(count-1) {
					return true
				}
			} else {
				run = 0
			}
		}
	}

	return false
}

// hasRepeatedWord reports whether any single word occurs at least count
// times in s, comparing case-insensitively across whitespace.
func hasRepeatedWord(s string, count int) bool {
	words := strings.Fields(strings.ToLower(s))
	if len(words) < count {
		return false
	}

	seen := make(map[string]int, len(words))
	for _, word := range words {
		seen[word]++
		if seen[word] >= count {
			return true
		}
	}

	return false
}
