package domain

// SpellCheckResult is the spell-check collaborator's answer for one text.
// Nothing here is persisted.
type SpellCheckResult struct {
	OriginalText       string `json:"original_text"`
	CorrectedPlain     string `json:"corrected_text_plain"`
	CorrectedHTML      string `json:"corrected_text_html"`
	ErrorsCount        int    `json:"errors_count"`
	OriginalWordCount  int    `json:"original_word_count_with_spaces"`
	CorrectedWordCount int    `json:"corrected_word_count_with_spaces"`
}
