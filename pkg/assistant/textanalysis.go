package assistant

import (
	"math"
	"strings"
	"unicode"
)

type TextMetrics struct {
	WordCount          int     `json:"wordCount"`
	SentenceCount      int     `json:"sentenceCount"`
	ReadingTimeMinutes int     `json:"readingTimeMinutes"`
	UniqueWords        int     `json:"uniqueWords"`
	CharacterCount     int     `json:"characterCount"`
	Readability        float64 `json:"readability"`
}

// AnalyzeText computes surface statistics for the given text. Reading time
// assumes 200 words per minute with a floor of one minute; readability is the
// average sentence length in words.
func AnalyzeText(text string) TextMetrics {
	sentenceCount := 0
	for _, chunk := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if strings.TrimSpace(chunk) != "" {
			sentenceCount++
		}
	}

	words := strings.Fields(text)

	characters := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			characters++
		}
	}

	unique := make(map[string]struct{}, len(words))
	for _, word := range words {
		unique[strings.ToLower(word)] = struct{}{}
	}

	readingTime := int(math.Round(float64(len(words)) / 200))
	if readingTime < 1 {
		readingTime = 1
	}

	return TextMetrics{
		WordCount:          len(words),
		SentenceCount:      sentenceCount,
		ReadingTimeMinutes: readingTime,
		UniqueWords:        len(unique),
		CharacterCount:     characters,
		Readability:        float64(len(words)) / math.Max(1, float64(sentenceCount)),
	}
}

// BuildSuggestions turns the metrics into editorial advice. At least one
// suggestion is always returned.
func BuildSuggestions(metrics TextMetrics) []string {
	suggestions := make([]string, 0, 3)
	if metrics.Readability > 20 {
		suggestions = append(suggestions, "Предложения слишком длинные — попробуйте разбить их на более короткие.")
	}
	if float64(metrics.UniqueWords)/math.Max(1, float64(metrics.WordCount)) < 0.3 {
		suggestions = append(suggestions, "Добавьте больше разнообразной лексики, чтобы избежать повторов.")
	}
	if metrics.WordCount < 120 {
		suggestions = append(suggestions, "Раскройте тему подробнее — текст получится убедительнее.")
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Текст выглядит отлично! Можно переходить к публикации.")
	}
	return suggestions
}
