// Package assistant implements the deterministic demo generators backing the
// AI endpoints. Every generator is a pure function of its input, there are no
// model calls and no randomness, so responses are stable across runs.
package assistant

// Token charges per request type. The numbers approximate what a real
// provider would bill for a comparable request.
const (
	TokensContentGeneration = 256
	TokensTextAnalysis      = 128
	TokensChat              = 64
	TokensImageGeneration   = 512
	TokensMarketingIdea     = 80
	TokensTranscription     = 96
)

// SynthesisTokens scales with the input text, with a floor of 32.
func SynthesisTokens(text string) int {
	n := (len([]rune(text)) + 3) / 4
	if n < 32 {
		return 32
	}
	return n
}
