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

// StageSolution labels failures of the improvement-suggestion step.
const StageSolution = "solution"

var solutionShape = schema.Shape{
	Name: "fread_solutions",
	Fields: []schema.Field{
		{Name: "solutions", Type: schema.TypeStringList, Count: domain.SolutionCount, MaxRunes: domain.SolutionMaxRunes},
	},
}

// SolutionGenerator obtains exactly three improvement suggestions.
type SolutionGenerator struct {
	client Client
	logger *zap.Logger
}

func NewSolutionGenerator(client Client, logger *zap.Logger) *SolutionGenerator {
	return &SolutionGenerator{client: client, logger: logger}
}

func (g *SolutionGenerator) Generate(ctx context.Context, text string) (domain.SolutionSet, error) {
	raw, err := g.client.Complete(ctx,
		prompt.SolutionSystemInstruction,
		prompt.BuildSolutionPrompt(text),
		constants.Generation.MaxOutputTokens,
		constants.Generation.Temperature,
	)
	if err != nil {
		return nil, errors.NewGenerationError(StageSolution, err)
	}

	payload, err := ParseJSONObject(raw)
	if err != nil {
		g.logger.Warn("Solution response is not valid JSON", zap.Error(err))
		return nil, errors.NewGenerationError(StageSolution, err)
	}

	values, err := solutionShape.Validate(payload)
	if err != nil {
		g.logger.Warn("Solution response violates shape", zap.Error(err))
		return nil, errors.NewGenerationError(StageSolution, err)
	}

	return domain.SolutionSet(values.Strings("solutions")), nil
}
