// Package service hosts the analysis orchestration on top of the ai
// generators and the persistence collaborator.
package service

import (
	"context"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/fread-app/fread-server-go/internal/constants"
	"github.com/fread-app/fread-server-go/internal/domain"
	"github.com/fread-app/fread-server-go/internal/service/ai"
	"github.com/fread-app/fread-server-go/internal/util"
	"github.com/fread-app/fread-server-go/pkg/errors"
)

// AnalysisStore persists a fully-assembled result as a single unit: either
// the whole record set is written, or none of it.
type AnalysisStore interface {
	SaveFread(ctx context.Context, result *domain.AnalysisResult) (*domain.AnalysisResult, error)
}

// Analyzer sequences one analysis request from raw text to persisted
// result. Each submission either reaches SUCCESS with every field populated
// or FAILED with the first failing step's detail; nothing in between is
// ever handed to the store.
type Analyzer struct {
	scores    *ai.ScoreGenerator
	titles    *ai.TitleGenerator
	comments  *ai.CommentGenerator
	solutions *ai.SolutionGenerator
	store     AnalysisStore
	logger    *zap.Logger
}

func NewAnalyzer(client ai.Client, store AnalysisStore, logger *zap.Logger) *Analyzer {
	return &Analyzer{
		scores:    ai.NewScoreGenerator(client, logger),
		titles:    ai.NewTitleGenerator(client, logger),
		comments:  ai.NewCommentGenerator(client, logger),
		solutions: ai.NewSolutionGenerator(client, logger),
		store:     store,
		logger:    logger,
	}
}

// SubmitFreadAnalysis runs the full pipeline for one submission.
//
// The score call runs first and alone: a scoring failure must not cost any
// comment or solution calls. Once scores exist, the title (which depends on
// them), the comment bundle and the solutions have no data dependency on
// each other and run concurrently; the first failure cancels the rest.
func (a *Analyzer) SubmitFreadAnalysis(ctx context.Context, userID int64, originalText string) (*domain.AnalysisResult, error) {
	if strings.TrimSpace(originalText) == "" {
		return nil, errors.NewEmptyInputError()
	}

	scores, err := a.scores.Generate(ctx, originalText)
	if err != nil {
		a.logger.Warn("Analysis failed at score stage",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}

	var (
		title     string
		comments  *domain.CommentBundle
		solutions domain.SolutionSet
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		generated, err := a.titles.Generate(ctx,
			util.PrefixRunes(originalText, constants.Generation.TitlePrefixRunes), scores)
		if err != nil {
			return err
		}
		title = generated
		return nil
	})
	p.Go(func(ctx context.Context) error {
		bundle, err := a.comments.Generate(ctx, originalText)
		if err != nil {
			return err
		}
		comments = bundle
		return nil
	})
	p.Go(func(ctx context.Context) error {
		generated, err := a.solutions.Generate(ctx, originalText)
		if err != nil {
			return err
		}
		solutions = generated
		return nil
	})

	if err := p.Wait(); err != nil {
		a.logger.Warn("Analysis failed after score stage",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}

	result := &domain.AnalysisResult{
		UserID:       userID,
		Type:         domain.AnalysisTypeFread,
		Title:        title,
		OriginalText: originalText,
		WordCount:    util.WordCount(originalText),
		Total:        scores.Total(),
		Scores:       scores,
		Comments:     comments,
		Solutions:    solutions,
	}

	saved, err := a.store.SaveFread(ctx, result)
	if err != nil {
		// Generated content is discarded; regenerating costs money and may
		// yield different content, so it must not repeat silently.
		a.logger.Error("Failed to persist analysis result",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}

	a.logger.Info("Fread analysis completed",
		zap.Int64("user_id", userID),
		zap.Int64("analysis_id", saved.ID),
		zap.Float64("total", saved.Total),
	)
	return saved, nil
}
