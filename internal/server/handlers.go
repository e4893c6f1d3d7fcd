package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fread-app/fread-server-go/internal/domain"
	apperrors "github.com/fread-app/fread-server-go/pkg/errors"
)

// Submitter runs the full analysis pipeline for one submission.
type Submitter interface {
	SubmitFreadAnalysis(ctx context.Context, userID int64, originalText string) (*domain.AnalysisResult, error)
}

// AnalysisReader serves persisted analyses.
type AnalysisReader interface {
	GetByID(ctx context.Context, id int64) (*domain.AnalysisResult, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.AnalysisSummary, error)
}

// SpellChecker proxies the external spell-check service.
type SpellChecker interface {
	Check(ctx context.Context, text string) (*domain.SpellCheckResult, error)
}

// Pinger reports backing-store health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	submitter Submitter
	reader    AnalysisReader
	speller   SpellChecker
	dbPing    Pinger
	cachePing Pinger
	logger    *zap.Logger
}

func NewHandler(submitter Submitter, reader AnalysisReader, speller SpellChecker, dbPing, cachePing Pinger, logger *zap.Logger) *Handler {
	return &Handler{
		submitter: submitter,
		reader:    reader,
		speller:   speller,
		dbPing:    dbPing,
		cachePing: cachePing,
		logger:    logger,
	}
}

type submitRequest struct {
	Text string `json:"text"`
}

type spellCheckRequest struct {
	Text string `json:"text"`
}

// SubmitFread accepts a text, runs the full pipeline synchronously and
// returns the persisted result.
func (h *Handler) SubmitFread(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "사용자 인증 정보가 없습니다.")
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "요청 본문을 읽을 수 없습니다.")
		return
	}

	result, err := h.submitter.SubmitFreadAnalysis(r.Context(), userID, req.Text)
	if err != nil {
		h.writeAnalysisError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "사용자 인증 정보가 없습니다.")
		return
	}

	summaries, err := h.reader.ListByUser(r.Context(), userID)
	if err != nil {
		h.writeAnalysisError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"analyses": summaries})
}

func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "사용자 인증 정보가 없습니다.")
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "잘못된 분석 ID입니다.")
		return
	}

	result, err := h.reader.GetByID(r.Context(), id)
	if err != nil {
		h.writeAnalysisError(w, err)
		return
	}
	if result == nil || result.UserID != userID {
		// 남의 분석은 존재 여부도 알리지 않는다
		writeError(w, http.StatusNotFound, "분석 결과를 찾을 수 없습니다.")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) SpellCheck(w http.ResponseWriter, r *http.Request) {
	var req spellCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "요청 본문을 읽을 수 없습니다.")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "텍스트가 누락되었습니다.")
		return
	}

	result, err := h.speller.Check(r.Context(), req.Text)
	if err != nil {
		h.writeAnalysisError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"postgres": "ok", "redis": "ok"}
	healthy := true

	if err := h.dbPing.Ping(r.Context()); err != nil {
		status["postgres"] = err.Error()
		healthy = false
	}
	if err := h.cachePing.Ping(r.Context()); err != nil {
		status["redis"] = err.Error()
		healthy = false
	}

	code := http.StatusOK
	if !healthy {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, status)
}

// writeAnalysisError maps the error taxonomy onto HTTP. Client-attributable
// failures surface their detail verbatim; server-side failures return a
// generic message and log the detail.
func (h *Handler) writeAnalysisError(w http.ResponseWriter, err error) {
	if analysisErr, ok := apperrors.AsAnalysisError(err); ok {
		if analysisErr.StatusCode >= 500 {
			h.logger.Error("Request failed", zap.String("code", analysisErr.Code), zap.Error(err))
			writeError(w, analysisErr.StatusCode, "서버 오류가 발생했습니다.")
			return
		}
		writeError(w, analysisErr.StatusCode, analysisErr.Error())
		return
	}

	h.logger.Error("Unclassified error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "서버 오류가 발생했습니다.")
}
