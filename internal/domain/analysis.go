package domain

import "time"

type AnalysisType string

const (
	// AnalysisTypeFread is the full reader-reaction analysis.
	AnalysisTypeFread AnalysisType = "FREAD"
)

// AnalysisRequest is an accepted submission. Immutable once created.
type AnalysisRequest struct {
	UserID       int64
	OriginalText string
}

// SolutionSet holds exactly 3 improvement suggestions.
type SolutionSet []string

// SolutionCount is the required number of suggestions per analysis.
const SolutionCount = 3

// SolutionMaxRunes caps each suggestion's length.
const SolutionMaxRunes = 150

// AnalysisResult aggregates everything one successful analysis produced.
// It is assembled only when every generation step succeeded; partial
// results are never persisted.
type AnalysisResult struct {
	ID           int64          `json:"id"`
	UserID       int64          `json:"user_id"`
	Type         AnalysisType   `json:"analysis_type"`
	Title        string         `json:"title"`
	OriginalText string         `json:"original_text"`
	WordCount    int            `json:"word_count"`
	Total        float64        `json:"total"`
	Scores       ScoreSet       `json:"scores"`
	Comments     *CommentBundle `json:"ai_comments_data"`
	Solutions    SolutionSet    `json:"solutions_data"`
	CreatedAt    time.Time      `json:"created_at"`
}

// AnalysisSummary is the per-user history listing row.
type AnalysisSummary struct {
	ID           int64        `json:"id"`
	Type         AnalysisType `json:"analysis_type"`
	Title        string       `json:"title"`
	OriginalText string       `json:"original_text"`
	CreatedAt    time.Time    `json:"created_at"`
}
