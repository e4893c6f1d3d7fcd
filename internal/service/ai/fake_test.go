package ai

import (
	"context"
	"sync"
)

// scriptedClient is the shared fake model client. The handler inspects the
// system instruction to decide which pipeline step is being exercised.
type scriptedClient struct {
	mu      sync.Mutex
	calls   int
	handler func(system, user string) (string, error)
}

func (c *scriptedClient) Complete(ctx context.Context, system, user string, maxOutputTokens int, temperature float32) (string, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return c.handler(system, user)
}

func (c *scriptedClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

const validCohortResponse = `{"comments":["댓글1😀","댓글2😂","댓글3🤔","댓글4😍","댓글5👍"]}`

const validSummaryResponse = `{"comments":["요약1😀","요약2😂","요약3🤔","요약4😍","요약5👍"]}`

const validScoreResponse = `{"logic":80,"appeal":75,"focus":70,"simplicity":90,"popularity":60}`

const validSolutionResponse = `{"solutions":["첫 문단의 시점을 통일하세요.","대사에 인물별 말투를 입히세요.","결말의 복선을 앞당겨 배치하세요."]}`

const validTitleResponse = `{"title":"문체가 돋보이는 소설 분석"}`
