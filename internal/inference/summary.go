package inference

const (
	// SummaryLength is the number of characters (runes) kept from the input.
	SummaryLength = 100
	// SummarySuffix is appended to every summary, truncated or not.
	SummarySuffix = "..."
)

// Summarize returns the first SummaryLength runes of text followed by
// SummarySuffix. Short inputs get the suffix too.
func Summarize(text string) string {
	n := 0
	for i := range text {
		if n == SummaryLength {
			return text[:i] + SummarySuffix
		}
		n++
	}
	return text + SummarySuffix
}
