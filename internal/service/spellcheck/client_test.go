package spellcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/fread-app/fread-server-go/internal/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.SpellCheckConfig{
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
	}, zap.NewNop())
}

func TestCheckSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/check" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"corrected_text_plain":"맞춤법이 틀렸다","corrected_text_html":"<span class=\"red_text\">맞춤법이</span> 틀렸다","errors_count":1}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	result, err := client.Check(context.Background(), "맞춤법이 틀렷다")
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	if result.CorrectedPlain != "맞춤법이 틀렸다" {
		t.Errorf("CorrectedPlain = %q", result.CorrectedPlain)
	}
	if result.ErrorsCount != 1 {
		t.Errorf("ErrorsCount = %d, want 1", result.ErrorsCount)
	}
	// 글자 수는 공백 포함 기준
	if result.OriginalWordCount != 8 || result.CorrectedWordCount != 8 {
		t.Errorf("word counts = %d/%d, want 8/8", result.OriginalWordCount, result.CorrectedWordCount)
	}
}

func TestCheckDerivesPlainFromHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"corrected_text_html":"<p><span class=\"red_text\">안녕</span> <span class=\"red_text\">하세요</span></p>","errors_count":0}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	result, err := client.Check(context.Background(), "안냥 하세요")
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	if result.CorrectedPlain != "안녕 하세요" {
		t.Errorf("CorrectedPlain = %q, want %q", result.CorrectedPlain, "안녕 하세요")
	}
	if result.ErrorsCount != 2 {
		t.Errorf("ErrorsCount = %d, want 2 (from .red_text spans)", result.ErrorsCount)
	}
}

func TestCheckCircuitOpensAfterConsecutiveFailures(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := client.Check(ctx, "텍스트"); err == nil {
			t.Fatal("expected error from failing upstream")
		}
	}
	if hits != 3 {
		t.Fatalf("upstream hit %d times, want 3", hits)
	}

	// 회로가 열린 뒤에는 네트워크를 타지 않는다
	if _, err := client.Check(ctx, "텍스트"); err == nil {
		t.Fatal("expected fast failure with open circuit")
	}
	if hits != 3 {
		t.Errorf("upstream hit %d times after circuit opened, want still 3", hits)
	}
}
