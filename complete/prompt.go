package complete

// FIM marker tokens for the StarCoder model family. The pipeline targets a
// different FIM-capable model format by swapping these constants.
const (
	fimPrefixToken = "<fim_prefix>"
	fimSuffixToken = "<fim_suffix>"
	fimMiddleToken = "<fim_middle>"
	fimPadToken    = "<fim_pad>"
	endOfTextToken = "<|endoftext|>"
)

// Generation policy. These are protocol constants, not user configuration:
// deterministic sampling, bounded generation length.
const (
	genTemperature = 0.0
	genNumPredict  = 128
)

// stopSequences bounds the completion to roughly one top-level statement or
// block: FIM padding, end of text, and a blank line.
var stopSequences = []string{fimPadToken, endOfTextToken, "\n\n"}

// FormatPrompt wraps the assembled context in FIM markers. The model is
// asked to produce the text between prefix and suffix.
func FormatPrompt(a Assembled) string {
	return fimPrefixToken + a.Prefix + fimSuffixToken + a.Suffix + fimMiddleToken
}
