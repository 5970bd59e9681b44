package inference

import "strings"

// Sentiment labels.
const (
	Positive = "positive"
	Negative = "negative"
	Neutral  = "neutral"
)

var (
	positiveKeywords = []string{"good", "great", "excellent"}
	negativeKeywords = []string{"bad", "poor", "worst"}
)

// Classify buckets text by case-insensitive substring matching. Positive
// keywords are checked first, so text containing both kinds is positive.
func Classify(text string) string {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, positiveKeywords):
		return Positive
	case containsAny(lower, negativeKeywords):
		return Negative
	default:
		return Neutral
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
