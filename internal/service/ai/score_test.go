package ai

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"go.uber.org/zap"

	apperrors "github.com/fread-app/fread-server-go/pkg/errors"
)

func TestScoreGenerate(t *testing.T) {
	client := &scriptedClient{handler: func(system, user string) (string, error) {
		return validScoreResponse, nil
	}}
	gen := NewScoreGenerator(client, zap.NewNop())

	scores, err := gen.Generate(context.Background(), "좋은 소설입니다.")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if scores.Logic != 80 || scores.Appeal != 75 || scores.Focus != 70 ||
		scores.Simplicity != 90 || scores.Popularity != 60 {
		t.Errorf("scores = %+v", scores)
	}
	if got := scores.Total(); got != 75.0 {
		t.Errorf("Total() = %v, want 75.0", got)
	}
	if client.callCount() != 1 {
		t.Errorf("calls = %d, want 1", client.callCount())
	}
}

func TestScoreGenerateUpstreamFailure(t *testing.T) {
	client := &scriptedClient{handler: func(system, user string) (string, error) {
		return "", apperrors.NewUpstreamError("openai", fmt.Errorf("request timed out"))
	}}
	gen := NewScoreGenerator(client, zap.NewNop())

	_, err := gen.Generate(context.Background(), "텍스트")
	if err == nil {
		t.Fatal("expected error")
	}

	var genErr *apperrors.GenerationError
	if !stderrors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %T", err)
	}
	if genErr.Stage != StageScore {
		t.Errorf("Stage = %q, want %q", genErr.Stage, StageScore)
	}
	var upstreamErr *apperrors.UpstreamError
	if !stderrors.As(err, &upstreamErr) {
		t.Error("expected UpstreamError in the chain")
	}
}

func TestScoreGenerateRejectsOutOfRange(t *testing.T) {
	client := &scriptedClient{handler: func(system, user string) (string, error) {
		return `{"logic":0,"appeal":75,"focus":70,"simplicity":90,"popularity":60}`, nil
	}}
	gen := NewScoreGenerator(client, zap.NewNop())

	_, err := gen.Generate(context.Background(), "텍스트")
	if err == nil {
		t.Fatal("expected error for out-of-range score")
	}

	var schemaErr *apperrors.SchemaError
	if !stderrors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError in the chain, got %T", err)
	}
	if schemaErr.Field != "logic" {
		t.Errorf("Field = %q, want logic", schemaErr.Field)
	}
}

func TestScoreGenerateRejectsNonJSON(t *testing.T) {
	client := &scriptedClient{handler: func(system, user string) (string, error) {
		return "점수는 80점입니다.", nil
	}}
	gen := NewScoreGenerator(client, zap.NewNop())

	_, err := gen.Generate(context.Background(), "텍스트")
	if err == nil {
		t.Fatal("expected error for non-JSON response")
	}

	var parseErr *apperrors.ParseError
	if !stderrors.As(err, &parseErr) {
		t.Fatalf("expected ParseError in the chain, got %T", err)
	}
	if parseErr.Raw != "점수는 80점입니다." {
		t.Errorf("Raw = %q", parseErr.Raw)
	}
}
