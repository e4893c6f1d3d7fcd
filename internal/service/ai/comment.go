package ai

import (
	"context"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/fread-app/fread-server-go/internal/constants"
	"github.com/fread-app/fread-server-go/internal/domain"
	"github.com/fread-app/fread-server-go/internal/prompt"
	"github.com/fread-app/fread-server-go/internal/schema"
	"github.com/fread-app/fread-server-go/internal/util"
	"github.com/fread-app/fread-server-go/pkg/errors"
)

// StageComment labels failures of the simulated-reader comment step.
const StageComment = "comment"

var cohortShape = schema.Shape{
	Name: "fread_comments",
	Fields: []schema.Field{
		{Name: "comments", Type: schema.TypeStringList, Count: domain.CommentsPerCohort},
	},
}

var summaryShape = schema.Shape{
	Name: "fread_summary_comments",
	Fields: []schema.Field{
		{Name: "comments", Type: schema.TypeStringList, Count: domain.RepresentativeCount},
	},
}

type cohort struct {
	age    int
	gender string
}

// cohortOrder fixes the cohort sequence: ages ascending, male before
// female. Labeling and the pooled summary input both follow it.
func cohortOrder() []cohort {
	cohorts := make([]cohort, 0, len(domain.CommentAges)*len(domain.CommentGenders))
	for _, age := range domain.CommentAges {
		for _, gender := range domain.CommentGenders {
			cohorts = append(cohorts, cohort{age: age, gender: gender})
		}
	}
	return cohorts
}

// CommentGenerator produces the full comment bundle: 5 comments for each of
// the 10 (age, gender) cohorts, plus 5 representative comments digested from
// the pooled 50.
type CommentGenerator struct {
	client Client
	logger *zap.Logger
}

func NewCommentGenerator(client Client, logger *zap.Logger) *CommentGenerator {
	return &CommentGenerator{client: client, logger: logger}
}

// Generate runs the 10 cohort calls concurrently; the first failure cancels
// the remaining ones and the whole bundle is discarded; already-generated
// cohorts are never exposed. On full success one further call condenses the
// pooled comments into the representative set.
func (g *CommentGenerator) Generate(ctx context.Context, text string) (*domain.CommentBundle, error) {
	cohorts := cohortOrder()
	results := make([][]string, len(cohorts))

	p := pool.New().
		WithMaxGoroutines(util.Min(constants.Generation.CohortConcurrency, len(cohorts))).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()

	for i, c := range cohorts {
		i, c := i, c
		p.Go(func(ctx context.Context) error {
			comments, err := g.generateCohort(ctx, text, c)
			if err != nil {
				return err
			}
			results[i] = comments
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}

	bundle := &domain.CommentBundle{
		Cohorts: make(map[string]domain.CohortComments, len(domain.CommentAges)),
	}
	pooled := make([]string, 0, len(cohorts)*domain.CommentsPerCohort)

	for i, c := range cohorts {
		key := domain.CohortKey(c.age)
		entry := bundle.Cohorts[key]
		if c.gender == "male" {
			entry.Male = results[i]
		} else {
			entry.Female = results[i]
		}
		bundle.Cohorts[key] = entry
		pooled = append(pooled, results[i]...)
	}

	representative, err := g.generateSummary(ctx, pooled)
	if err != nil {
		return nil, err
	}
	bundle.Representative = representative

	g.logger.Debug("Comment bundle assembled",
		zap.Int("cohorts", len(bundle.Cohorts)),
		zap.Int("pooled_comments", len(pooled)),
	)
	return bundle, nil
}

func (g *CommentGenerator) generateCohort(ctx context.Context, text string, c cohort) ([]string, error) {
	raw, err := g.client.Complete(ctx,
		prompt.BuildCommentSystemInstruction(prompt.CommentVars{Age: c.age, Gender: c.gender}),
		prompt.BuildCommentPrompt(text),
		constants.Generation.MaxOutputTokens,
		constants.Generation.Temperature,
	)
	if err != nil {
		return nil, g.cohortError(c, err)
	}

	payload, err := ParseJSONObject(raw)
	if err != nil {
		return nil, g.cohortError(c, err)
	}

	values, err := cohortShape.Validate(payload)
	if err != nil {
		return nil, g.cohortError(c, err)
	}

	return values.Strings("comments"), nil
}

func (g *CommentGenerator) cohortError(c cohort, cause error) error {
	g.logger.Warn("Cohort comment generation failed",
		zap.Int("age", c.age),
		zap.String("gender", c.gender),
		zap.Error(cause),
	)
	genErr := errors.NewGenerationError(StageComment, cause)
	genErr.Context["age"] = c.age
	genErr.Context["gender"] = c.gender
	return genErr
}

func (g *CommentGenerator) generateSummary(ctx context.Context, pooled []string) ([]string, error) {
	raw, err := g.client.Complete(ctx,
		prompt.SummarySystemInstruction,
		prompt.BuildSummaryPrompt(pooled),
		constants.Generation.MaxOutputTokens,
		constants.Generation.Temperature,
	)
	if err != nil {
		return nil, errors.NewGenerationError(StageComment, err)
	}

	payload, err := ParseJSONObject(raw)
	if err != nil {
		g.logger.Warn("Summary comment response is not valid JSON", zap.Error(err))
		return nil, errors.NewGenerationError(StageComment, err)
	}

	values, err := summaryShape.Validate(payload)
	if err != nil {
		g.logger.Warn("Summary comment response violates shape", zap.Error(err))
		return nil, errors.NewGenerationError(StageComment, err)
	}

	return values.Strings("comments"), nil
}
