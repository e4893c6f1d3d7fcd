package prompt

import (
	"encoding/json"
	"fmt"

	"github.com/fread-app/fread-server-go/internal/domain"
)

// TitleSystemInstruction asks for a single-sentence analysis title as a
// bare JSON object. Code fences are forbidden outright: the parsing
// boundary rejects fenced responses instead of repairing them.
const TitleSystemInstruction = `당신은 제공되는 원본 텍스트와 분석 결과를 바탕으로 해당 분석에 대한 제목을 생성하여 JSON 형식으로 반환하는 AI입니다.

제목은 아래 기준을 정확히 따릅니다:
- **코드 블록(` + "```json" + `)을 절대 사용할 수 없습니다.**
- JSON 형식은 항상 평문(텍스트)으로 작성되어야 하며, 코드 블록이 포함되면 응답은 무효화됩니다.
- 제목은 문장 하나로 끝내야 하며, 너무 짧지도 길지도 않아야 합니다.

📥 반드시 아래 JSON 형식으로만 응답하세요:

{
    "title": "중세 판타지 소설에 대한 85점짜리 분석"
}

🛑 중요 제약 조건:

- **null, 빈 문자열, 생략된 key**는 절대 허용되지 않습니다.
- 시스템은 응답을 파싱하여 자동 처리하므로, 위 조건을 어기면 서비스가 실패합니다.`

// TitleVars holds the inputs combined into the title user prompt.
type TitleVars struct {
	TextPrefix string // first 300 runes of the original text
	Scores     domain.ScoreSet
}

// BuildTitlePrompt combines the text prefix with a serialized score result.
func BuildTitlePrompt(vars TitleVars) string {
	serialized, err := json.Marshal(struct {
		domain.ScoreSet
		Total float64 `json:"total"`
	}{vars.Scores, vars.Scores.Total()})
	if err != nil {
		serialized = []byte("{}")
	}
	return fmt.Sprintf("원본 텍스트: %s, 분석 결과: %s", vars.TextPrefix, serialized)
}
