package ai

import (
	"context"

	"go.uber.org/zap"

	"github.com/fread-app/fread-server-go/internal/constants"
	"github.com/fread-app/fread-server-go/internal/domain"
	"github.com/fread-app/fread-server-go/internal/prompt"
	"github.com/fread-app/fread-server-go/internal/schema"
	"github.com/fread-app/fread-server-go/pkg/errors"
)

// StageScore labels failures of the quantitative scoring step.
const StageScore = "score"

var scoreShape = schema.Shape{
	Name: "fread_score",
	Fields: []schema.Field{
		{Name: "logic", Type: schema.TypeInt, Min: 1, Max: 100, Bounded: true},
		{Name: "appeal", Type: schema.TypeInt, Min: 1, Max: 100, Bounded: true},
		{Name: "focus", Type: schema.TypeInt, Min: 1, Max: 100, Bounded: true},
		{Name: "simplicity", Type: schema.TypeInt, Min: 1, Max: 100, Bounded: true},
		{Name: "popularity", Type: schema.TypeInt, Min: 1, Max: 100, Bounded: true},
	},
}

// ScoreGenerator obtains the five quantitative sub-scores for a text.
type ScoreGenerator struct {
	client Client
	logger *zap.Logger
}

func NewScoreGenerator(client Client, logger *zap.Logger) *ScoreGenerator {
	return &ScoreGenerator{client: client, logger: logger}
}

// Generate runs one model call and validates the full five-field score set.
// No partial ScoreSet is ever returned: all five fields validate or the
// whole call fails with a score-stage GenerationError.
func (g *ScoreGenerator) Generate(ctx context.Context, text string) (domain.ScoreSet, error) {
	raw, err := g.client.Complete(ctx,
		prompt.ScoreSystemInstruction,
		prompt.BuildScorePrompt(text),
		constants.Generation.MaxOutputTokens,
		constants.Generation.Temperature,
	)
	if err != nil {
		return domain.ScoreSet{}, errors.NewGenerationError(StageScore, err)
	}

	payload, err := ParseJSONObject(raw)
	if err != nil {
		g.logger.Warn("Score response is not valid JSON", zap.Error(err))
		return domain.ScoreSet{}, errors.NewGenerationError(StageScore, err)
	}

	values, err := scoreShape.Validate(payload)
	if err != nil {
		g.logger.Warn("Score response violates shape", zap.Error(err))
		return domain.ScoreSet{}, errors.NewGenerationError(StageScore, err)
	}

	scores := domain.ScoreSet{
		Logic:      values.Int("logic"),
		Appeal:     values.Int("appeal"),
		Focus:      values.Int("focus"),
		Simplicity: values.Int("simplicity"),
		Popularity: values.Int("popularity"),
	}

	g.logger.Debug("Score set generated", zap.Float64("total", scores.Total()))
	return scores, nil
}
