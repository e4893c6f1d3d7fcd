// Package spellcheck talks to the external Korean spell-check service.
// The service is flaky under load, so every call goes through a circuit
// breaker; an open circuit fails fast without touching the network.
package spellcheck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/fread-app/fread-server-go/internal/config"
	"github.com/fread-app/fread-server-go/internal/constants"
	"github.com/fread-app/fread-server-go/internal/domain"
	"github.com/fread-app/fread-server-go/internal/util"
	"github.com/fread-app/fread-server-go/pkg/errors"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	breaker    *util.CircuitBreaker
	logger     *zap.Logger
}

func NewClient(cfg config.SpellCheckConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		breaker: util.NewCircuitBreaker(
			constants.CircuitBreakerConfig.FailureThreshold,
			constants.CircuitBreakerConfig.ResetTimeout,
			logger,
		),
		logger: logger,
	}
}

type checkRequest struct {
	Text string `json:"text"`
}

type checkResponse struct {
	CorrectedPlain string `json:"corrected_text_plain"`
	CorrectedHTML  string `json:"corrected_text_html"`
	ErrorsCount    int    `json:"errors_count"`
}

// Check runs one text through the spell checker and fills in the word
// counts the caller's clients expect.
func (c *Client) Check(ctx context.Context, text string) (*domain.SpellCheckResult, error) {
	if !c.breaker.CanExecute() {
		return nil, errors.NewServiceError("spell check temporarily unavailable", "spellcheck", "check", nil)
	}

	resp, err := c.post(ctx, text)
	if err != nil {
		c.breaker.RecordFailure()
		return nil, errors.NewServiceError("spell check request failed", "spellcheck", "check", err)
	}
	c.breaker.RecordSuccess()

	plain := resp.CorrectedPlain
	count := resp.ErrorsCount

	// 일부 응답은 HTML만 내려준다
	if resp.CorrectedHTML != "" && (plain == "" || count == 0) {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.CorrectedHTML))
		if err == nil {
			if plain == "" {
				plain = strings.TrimSpace(doc.Text())
			}
			if count == 0 {
				count = doc.Find(".red_text").Length()
			}
		}
	}
	if plain == "" {
		plain = text
	}

	return &domain.SpellCheckResult{
		OriginalText:       text,
		CorrectedPlain:     plain,
		CorrectedHTML:      resp.CorrectedHTML,
		ErrorsCount:        count,
		OriginalWordCount:  util.WordCount(text),
		CorrectedWordCount: util.WordCount(plain),
	}, nil
}

func (c *Client) post(ctx context.Context, text string) (*checkResponse, error) {
	body, err := json.Marshal(checkRequest{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/check", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, httpResp.Body)
		return nil, fmt.Errorf("unexpected status %d", httpResp.StatusCode)
	}

	var resp checkResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
