package llm

import (
	"fmt"

	"github.com/Veraticus/lifeone/internal/temporal"
)

const promptTemplate = `현재 시간: %s (%s)
사용자 입력: %s

다음 정보를 추출하여 JSON 형식으로 반환하세요:
- 일정 (schedule): title, date (YYYY-MM-DD), time (HH:MM)
- 연락처 (contacts): name, phone, email, group
- 지출/수입 (expenses): date (YYYY-MM-DD), item, amount, type (expense/income), category
- 메모/다이어리 (diary): date (YYYY-MM-DD), entry, group

응답:`

// BuildPrompt renders the extraction prompt for text at the anchor's wall-clock time.
func BuildPrompt(text string, a temporal.Anchor) string {
	return fmt.Sprintf(promptTemplate, a.DateTime(), a.WeekdayName(), text)
}
