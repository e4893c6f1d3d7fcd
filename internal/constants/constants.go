package constants

import "time"

var Generation = struct {
	MaxOutputTokens   int
	Temperature       float32
	TitlePrefixRunes  int
	CohortConcurrency int
}{
	MaxOutputTokens:   2040,
	Temperature:       0.5,
	TitlePrefixRunes:  300, // 제목 생성에 쓰이는 원본 텍스트 길이
	CohortConcurrency: 5,
}

var CacheTTL = struct {
	AnalysisByID     time.Duration
	UserAnalysisList time.Duration
}{
	AnalysisByID:     30 * time.Minute,
	UserAnalysisList: 5 * time.Minute,
}

var CircuitBreakerConfig = struct {
	FailureThreshold int
	ResetTimeout     time.Duration
}{
	FailureThreshold: 3,                // 3회 연속 실패 시 Circuit OPEN
	ResetTimeout:     30 * time.Second, // 재시도 대기 시간
}

var HTTPConfig = struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}{
	ReadTimeout:     30 * time.Second,
	WriteTimeout:    5 * time.Minute, // 분석 한 건이 모델 호출 13회를 기다린다
	IdleTimeout:     60 * time.Second,
	ShutdownTimeout: 10 * time.Second,
}
