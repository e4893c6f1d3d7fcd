package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/fread-app/fread-server-go/internal/domain"
	apperrors "github.com/fread-app/fread-server-go/pkg/errors"
)

type fakeSubmitter struct {
	result *domain.AnalysisResult
	err    error
	calls  int
}

func (f *fakeSubmitter) SubmitFreadAnalysis(_ context.Context, userID int64, text string) (*domain.AnalysisResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	r := *f.result
	r.UserID = userID
	r.OriginalText = text
	return &r, nil
}

type fakeReader struct {
	byID   map[int64]*domain.AnalysisResult
	byUser map[int64][]*domain.AnalysisSummary
	err    error
}

func (f *fakeReader) GetByID(_ context.Context, id int64) (*domain.AnalysisResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeReader) ListByUser(_ context.Context, userID int64) ([]*domain.AnalysisSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byUser[userID], nil
}

type fakeSpeller struct {
	result *domain.SpellCheckResult
	err    error
}

func (f *fakeSpeller) Check(_ context.Context, text string) (*domain.SpellCheckResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	r := *f.result
	r.OriginalText = text
	return &r, nil
}

type fakePinger struct{ err error }

func (f *fakePinger) Ping(context.Context) error { return f.err }

func newTestRouter(submitter Submitter, reader AnalysisReader, speller SpellChecker) http.Handler {
	logger := zap.NewNop()
	h := NewHandler(submitter, reader, speller, &fakePinger{}, &fakePinger{}, logger)
	return NewRouter(h, logger)
}

func decodeErrorMessage(t *testing.T, body *strings.Reader) string {
	t.Helper()
	var payload map[string]string
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return payload["error_message"]
}

func TestSubmitFreadCreated(t *testing.T) {
	submitter := &fakeSubmitter{result: &domain.AnalysisResult{
		ID:    1,
		Type:  domain.AnalysisTypeFread,
		Title: "문체가 돋보이는 소설 분석",
		Total: 75.0,
	}}
	router := newTestRouter(submitter, &fakeReader{}, &fakeSpeller{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/fread", strings.NewReader(`{"text":"좋은 소설입니다."}`))
	req.Header.Set("X-User-ID", "42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}

	var result domain.AnalysisResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if result.UserID != 42 {
		t.Errorf("UserID = %d, want 42", result.UserID)
	}
	if result.Title != "문체가 돋보이는 소설 분석" {
		t.Errorf("Title = %q", result.Title)
	}
}

func TestSubmitFreadMissingIdentity(t *testing.T) {
	submitter := &fakeSubmitter{result: &domain.AnalysisResult{}}
	router := newTestRouter(submitter, &fakeReader{}, &fakeSpeller{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/fread", strings.NewReader(`{"text":"텍스트"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if submitter.calls != 0 {
		t.Errorf("submitter called %d times, want 0", submitter.calls)
	}
}

func TestSubmitFreadEmptyInputDetailVerbatim(t *testing.T) {
	submitter := &fakeSubmitter{err: apperrors.NewEmptyInputError()}
	router := newTestRouter(submitter, &fakeReader{}, &fakeSpeller{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/fread", strings.NewReader(`{"text":""}`))
	req.Header.Set("X-User-ID", "42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if msg := decodeErrorMessage(t, strings.NewReader(rec.Body.String())); msg != "텍스트가 누락되었습니다." {
		t.Errorf("error_message = %q", msg)
	}
}

func TestSubmitFreadServerErrorIsGeneric(t *testing.T) {
	cause := apperrors.NewPersistenceError("failed to commit analysis", "save", nil)
	submitter := &fakeSubmitter{err: cause}
	router := newTestRouter(submitter, &fakeReader{}, &fakeSpeller{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/fread", strings.NewReader(`{"text":"텍스트"}`))
	req.Header.Set("X-User-ID", "42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	// 내부 실패의 상세는 응답에 싣지 않는다
	msg := decodeErrorMessage(t, strings.NewReader(rec.Body.String()))
	if msg != "서버 오류가 발생했습니다." {
		t.Errorf("error_message = %q", msg)
	}
}

func TestGetAnalysisHidesOtherUsers(t *testing.T) {
	reader := &fakeReader{byID: map[int64]*domain.AnalysisResult{
		7: {ID: 7, UserID: 1, Title: "제목"},
	}}
	router := newTestRouter(&fakeSubmitter{}, reader, &fakeSpeller{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/7", nil)
	req.Header.Set("X-User-ID", "2")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for another user's analysis", rec.Code)
	}
}

func TestGetAnalysisOwnedByCaller(t *testing.T) {
	reader := &fakeReader{byID: map[int64]*domain.AnalysisResult{
		7: {ID: 7, UserID: 1, Title: "제목"},
	}}
	router := newTestRouter(&fakeSubmitter{}, reader, &fakeSpeller{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/7", nil)
	req.Header.Set("X-User-ID", "1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestListAnalyses(t *testing.T) {
	reader := &fakeReader{byUser: map[int64][]*domain.AnalysisSummary{
		5: {{ID: 2, Title: "둘"}, {ID: 1, Title: "하나"}},
	}}
	router := newTestRouter(&fakeSubmitter{}, reader, &fakeSpeller{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses", nil)
	req.Header.Set("X-User-ID", "5")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var payload struct {
		Analyses []*domain.AnalysisSummary `json:"analyses"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(payload.Analyses) != 2 {
		t.Errorf("len(analyses) = %d, want 2", len(payload.Analyses))
	}
}

func TestSpellCheckNoIdentityRequired(t *testing.T) {
	speller := &fakeSpeller{result: &domain.SpellCheckResult{
		CorrectedPlain: "맞춤법이 틀렸다",
		ErrorsCount:    1,
	}}
	router := newTestRouter(&fakeSubmitter{}, &fakeReader{}, speller)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/spellcheck", strings.NewReader(`{"text":"맞춤법이 틀렷다"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestSpellCheckUpstreamDown(t *testing.T) {
	speller := &fakeSpeller{err: apperrors.NewServiceError("spell check temporarily unavailable", "spellcheck", "check", nil)}
	router := newTestRouter(&fakeSubmitter{}, &fakeReader{}, speller)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/spellcheck", strings.NewReader(`{"text":"텍스트"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(&fakeSubmitter{}, &fakeReader{}, &fakeSpeller{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
