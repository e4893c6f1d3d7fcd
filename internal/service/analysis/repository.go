// Package analysis is the persistence collaborator: it writes one finished
// AnalysisResult as a single unit and serves reads by id and by user.
package analysis

import (
	"context"
	"database/sql"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/fread-app/fread-server-go/internal/domain"
	"github.com/fread-app/fread-server-go/internal/service/database"
	"github.com/fread-app/fread-server-go/pkg/errors"
)

type Repository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewRepository(pg *database.PostgresService, logger *zap.Logger) *Repository {
	return &Repository{
		db:     pg.GetDB(),
		logger: logger,
	}
}

// SaveFread writes the analysis row and its fread result row in one
// transaction. The result arrives fully populated; a partially-assembled
// value never reaches this boundary.
func (r *Repository) SaveFread(ctx context.Context, result *domain.AnalysisResult) (*domain.AnalysisResult, error) {
	commentsJSON, err := json.Marshal(result.Comments)
	if err != nil {
		return nil, errors.NewPersistenceError("failed to encode comment bundle", "save", err)
	}
	solutionsJSON, err := json.Marshal(result.Solutions)
	if err != nil {
		return nil, errors.NewPersistenceError("failed to encode solutions", "save", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.NewPersistenceError("failed to begin transaction", "save", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO analyses (user_id, analysis_type, title, original_text, word_count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		result.UserID, result.Type, result.Title, result.OriginalText, result.WordCount,
	).Scan(&result.ID, &result.CreatedAt)
	if err != nil {
		return nil, errors.NewPersistenceError("failed to insert analysis", "save", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO fread_analyses
			(analysis_id, total, logic, appeal, focus, simplicity, popularity, ai_comments_data, solutions_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		result.ID, result.Total,
		result.Scores.Logic, result.Scores.Appeal, result.Scores.Focus,
		result.Scores.Simplicity, result.Scores.Popularity,
		commentsJSON, solutionsJSON,
	)
	if err != nil {
		return nil, errors.NewPersistenceError("failed to insert fread result", "save", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.NewPersistenceError("failed to commit analysis", "save", err)
	}

	r.logger.Debug("Analysis persisted",
		zap.Int64("analysis_id", result.ID),
		zap.Int64("user_id", result.UserID),
	)
	return result, nil
}

// GetByID loads one analysis with its fread result.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AnalysisResult, error) {
	var (
		result        domain.AnalysisResult
		commentsJSON  []byte
		solutionsJSON []byte
	)

	err := r.db.QueryRowContext(ctx, `
		SELECT a.id, a.user_id, a.analysis_type, a.title, a.original_text, a.word_count, a.created_at,
		       f.total, f.logic, f.appeal, f.focus, f.simplicity, f.popularity,
		       f.ai_comments_data, f.solutions_data
		FROM analyses a
		JOIN fread_analyses f ON f.analysis_id = a.id
		WHERE a.id = $1`,
		id,
	).Scan(
		&result.ID, &result.UserID, &result.Type, &result.Title,
		&result.OriginalText, &result.WordCount, &result.CreatedAt,
		&result.Total,
		&result.Scores.Logic, &result.Scores.Appeal, &result.Scores.Focus,
		&result.Scores.Simplicity, &result.Scores.Popularity,
		&commentsJSON, &solutionsJSON,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewPersistenceError("failed to load analysis", "get", err)
	}

	result.Comments = &domain.CommentBundle{}
	if err := json.Unmarshal(commentsJSON, result.Comments); err != nil {
		return nil, errors.NewPersistenceError("failed to decode comment bundle", "get", err)
	}
	if err := json.Unmarshal(solutionsJSON, &result.Solutions); err != nil {
		return nil, errors.NewPersistenceError("failed to decode solutions", "get", err)
	}

	return &result, nil
}

// ListByUser returns the user's analysis history, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]*domain.AnalysisSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, analysis_type, title, original_text, created_at
		FROM analyses
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, errors.NewPersistenceError("failed to list analyses", "list", err)
	}
	defer rows.Close()

	summaries := make([]*domain.AnalysisSummary, 0)
	for rows.Next() {
		var s domain.AnalysisSummary
		if err := rows.Scan(&s.ID, &s.Type, &s.Title, &s.OriginalText, &s.CreatedAt); err != nil {
			return nil, errors.NewPersistenceError("failed to scan analysis row", "list", err)
		}
		summaries = append(summaries, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewPersistenceError("failed to iterate analyses", "list", err)
	}

	return summaries, nil
}
