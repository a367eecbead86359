package services

import (
	"strconv"
	"strings"
)

// Score returns the percentage of distinct job description words that also
// appear in the resume, rounded to two decimals with ties going to the even
// digit. Words are lowercased and split on whitespace. An empty job
// description scores 0.
func Score(resumeText, jdText string) float64 {
	jdWords := wordSet(jdText)
	if len(jdWords) == 0 {
		return 0
	}

	resumeWords := wordSet(resumeText)

	overlap := 0
	for word := range jdWords {
		if _, ok := resumeWords[word]; ok {
			overlap++
		}
	}

	return roundScore(float64(overlap) / float64(len(jdWords)) * 100)
}

// roundScore rounds the exact binary value to two decimals, half to even.
func roundScore(ratio float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(ratio, 'f', 2, 64), 64)
	if err != nil {
		return ratio
	}
	return rounded
}

func wordSet(text string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
