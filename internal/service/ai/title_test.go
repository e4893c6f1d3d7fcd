package ai

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/fread-app/fread-server-go/internal/domain"
	apperrors "github.com/fread-app/fread-server-go/pkg/errors"
)

var testScores = domain.ScoreSet{Logic: 80, Appeal: 75, Focus: 70, Simplicity: 90, Popularity: 60}

func TestTitleGenerate(t *testing.T) {
	var userPrompt string
	client := &scriptedClient{handler: func(system, user string) (string, error) {
		userPrompt = user
		return validTitleResponse, nil
	}}
	gen := NewTitleGenerator(client, zap.NewNop())

	title, err := gen.Generate(context.Background(), "좋은 소설입니다.", testScores)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if title != "문체가 돋보이는 소설 분석" {
		t.Errorf("title = %q", title)
	}

	if !strings.Contains(userPrompt, "좋은 소설입니다.") {
		t.Error("user prompt must carry the text prefix")
	}
	if !strings.Contains(userPrompt, `"total":75`) {
		t.Errorf("user prompt must carry the aggregate score, got %q", userPrompt)
	}
}

func TestTitleGenerateRejectsCodeFence(t *testing.T) {
	// JSON 자체는 유효해도 펜스가 있으면 실패해야 한다
	client := &scriptedClient{handler: func(system, user string) (string, error) {
		return "```json\n{\"title\":\"제목\"}\n```", nil
	}}
	gen := NewTitleGenerator(client, zap.NewNop())

	_, err := gen.Generate(context.Background(), "텍스트", testScores)
	if err == nil {
		t.Fatal("expected error for fenced response")
	}

	var genErr *apperrors.GenerationError
	if !stderrors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %T", err)
	}
	if genErr.Stage != StageTitle {
		t.Errorf("Stage = %q, want %q", genErr.Stage, StageTitle)
	}
	var schemaErr *apperrors.SchemaError
	if !stderrors.As(err, &schemaErr) {
		t.Fatal("expected SchemaError in the chain")
	}
	if !strings.Contains(schemaErr.Reason, "code fence") {
		t.Errorf("Reason = %q", schemaErr.Reason)
	}
}

func TestTitleGenerateRejectsMissingField(t *testing.T) {
	client := &scriptedClient{handler: func(system, user string) (string, error) {
		return `{"headline":"제목"}`, nil
	}}
	gen := NewTitleGenerator(client, zap.NewNop())

	if _, err := gen.Generate(context.Background(), "텍스트", testScores); err == nil {
		t.Fatal("expected error for missing title field")
	}
}
