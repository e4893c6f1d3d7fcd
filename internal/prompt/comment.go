package prompt

import (
	"encoding/json"
	"fmt"
)

// CommentVars parameterizes the cohort comment instruction.
type CommentVars struct {
	Age    int
	Gender string
}

func genderLabel(gender string) string {
	if gender == "male" {
		return "남성"
	}
	return "여성"
}

// BuildCommentSystemInstruction renders the per-cohort instruction: five
// one-line comments in the voice of readers from one (age, gender) cohort.
func BuildCommentSystemInstruction(vars CommentVars) string {
	label := genderLabel(vars.Gender)
	return fmt.Sprintf(`당신은 %d대 %s 독자 5명이 소설 한 편을 읽은 후 남길 실제 댓글을 생성하여 JSON 형식으로 반환하는 AI입니다.

- 각 댓글은 한 줄이며, 이모티콘을 포함해야 합니다.
- 각 댓글은 %d대 %s 독자의 말투, 감정, 관심사를 고려하여 작성되어야 합니다.
- 현실적인 한국인이 작성할 만한 어투와 내용이어야 합니다.
- 댓글은 문장 하나로 끝내야 하며, 너무 짧지도 길지도 않아야 합니다.

📥 반드시 아래 JSON 형식으로만 응답하세요:

{
    "comments": [
        "아니 진짜 웃기긴 한데 주인공 좀 답답함🤔",
        "뭔가 작가님이 하신 남주 묘사 보면 엄청 잘생겼을거같지 않음??😍",
        ...
    ]
}

🛑 중요 제약 조건:

- **댓글은 반드시 5개여야 하며**, 4개 또는 6개는 절대 허용되지 않습니다.
- **null, 빈 문자열, 생략된 key**는 절대 허용되지 않습니다.
- 시스템은 응답을 파싱하여 자동 처리하므로, 위 조건을 어기면 서비스가 실패합니다.`,
		vars.Age, label, vars.Age, label)
}

// BuildCommentPrompt builds the user prompt for cohort comment generation.
func BuildCommentPrompt(originalText string) string {
	return originalText
}

// SummarySystemInstruction asks for five representative comments digested
// from all fifty cohort comments, synthesized rather than copied.
const SummarySystemInstruction = `당신은 독자 50명의 댓글을 읽고, 핵심 반응을 5개의 대표 댓글로 요약하여 JSON 형식으로 반환하는 AI입니다.

- 댓글을 창조하는 것이 아닌, 기존 댓글들을 분석하여 요약을 해야 합니다.
- 기존의 댓글과 내용이 완전히 일치해서는 안됩니다.
- 현실적인 한국인이 작성할 만한 어투와 내용이어야 합니다.
- 각 댓글은 한 줄이며, 이모티콘을 포함해야 합니다.
- 댓글은 문장 하나로 끝내야 하며, 너무 짧지도 길지도 않아야 합니다.

📥 반드시 아래 JSON 형식으로만 응답하세요:

{
    "comments": [
        "아니 진짜 웃기긴 한데 주인공 좀 답답함🤔",
        "뭔가 작가님이 하신 남주 묘사 보면 엄청 잘생겼을거같지 않음??😍",
        ...
    ]
}

🛑 중요 제약 조건:

- **댓글은 반드시 5개여야 하며**, 4개 또는 6개는 절대 허용되지 않습니다.
- **null, 빈 문자열, 생략된 key**는 절대 허용되지 않습니다.
- 시스템은 응답을 파싱하여 자동 처리하므로, 위 조건을 어기면 서비스가 실패합니다.`

// BuildSummaryPrompt serializes the pooled cohort comments as the user
// prompt for representative comment generation.
func BuildSummaryPrompt(comments []string) string {
	data, err := json.Marshal(comments)
	if err != nil {
		// []string cannot fail to marshal; keep the signature simple.
		return "[]"
	}
	return string(data)
}
