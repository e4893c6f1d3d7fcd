package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/fread-app/fread-server-go/internal/constants"
	"github.com/fread-app/fread-server-go/internal/domain"
	"github.com/fread-app/fread-server-go/internal/prompt"
	"github.com/fread-app/fread-server-go/internal/schema"
	"github.com/fread-app/fread-server-go/pkg/errors"
)

// StageTitle labels failures of the title step.
const StageTitle = "title"

var titleShape = schema.Shape{
	Name: "fread_title",
	Fields: []schema.Field{
		{Name: "title", Type: schema.TypeString},
	},
}

// TitleGenerator derives a short title from a text prefix and a prior score
// result.
type TitleGenerator struct {
	client Client
	logger *zap.Logger
}

func NewTitleGenerator(client Client, logger *zap.Logger) *TitleGenerator {
	return &TitleGenerator{client: client, logger: logger}
}

// Generate runs one model call. Precondition: textPrefix is already
// truncated to the first 300 characters of the original text; truncation is
// the caller's responsibility. A fenced response fails validation; it is
// never silently repaired.
func (g *TitleGenerator) Generate(ctx context.Context, textPrefix string, scores domain.ScoreSet) (string, error) {
	raw, err := g.client.Complete(ctx,
		prompt.TitleSystemInstruction,
		prompt.BuildTitlePrompt(prompt.TitleVars{TextPrefix: textPrefix, Scores: scores}),
		constants.Generation.MaxOutputTokens,
		constants.Generation.Temperature,
	)
	if err != nil {
		return "", errors.NewGenerationError(StageTitle, err)
	}

	if strings.Contains(raw, "```") {
		g.logger.Warn("Title response contains a code fence")
		return "", errors.NewGenerationError(StageTitle,
			errors.NewSchemaError(titleShape.Name, "title", "response contains a markdown code fence"))
	}

	payload, err := ParseJSONObject(raw)
	if err != nil {
		g.logger.Warn("Title response is not valid JSON", zap.Error(err))
		return "", errors.NewGenerationError(StageTitle, err)
	}

	values, err := titleShape.Validate(payload)
	if err != nil {
		g.logger.Warn("Title response violates shape", zap.Error(err))
		return "", errors.NewGenerationError(StageTitle, err)
	}

	title := values.String("title")
	g.logger.Debug("Title generated", zap.String("title", fmt.Sprintf("%.40s", title)))
	return title, nil
}
