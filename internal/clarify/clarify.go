// Package clarify applies a caller's answer to a pending clarification question.
package clarify

import (
	"fmt"
	"strings"

	"github.com/Veraticus/lifeone/internal/common"
	"github.com/Veraticus/lifeone/internal/model"
	"github.com/Veraticus/lifeone/internal/normalize"
)

// Apply resolves pending with answer and returns the final result together with a
// confirmation message. An hour answer (오전 or 오후) rewrites every schedule hour
// from 1 to 12. A category label, or its key such as expenses, keeps only that
// category's records.
func Apply(pending model.ExtractionResult, answer string) (model.ExtractionResult, string, error) {
	answer = strings.TrimSpace(answer)

	switch answer {
	case normalize.Morning, normalize.Afternoon:
		return applyHour(pending, answer)
	}

	if c, ok := model.CategoryFromLabel(answer); ok {
		return pending.Only(c), fmt.Sprintf("%s에 저장했습니다.", answer), nil
	}
	if c := model.Category(answer); c.Valid() {
		return pending.Only(c), fmt.Sprintf("%s에 저장했습니다.", c.Label()), nil
	}

	return model.ExtractionResult{}, "", fmt.Errorf("%w: %q", common.ErrUnknownClarification, answer)
}

func applyHour(pending model.ExtractionResult, answer string) (model.ExtractionResult, string, error) {
	out := pending.Clone()
	out.Clarification = model.ClarificationState{}

	var messages []string
	for i := range out.Schedule {
		s := &out.Schedule[i]
		hour, ok := normalize.Hour(s.Time)
		if !ok || hour < 1 || hour > 12 {
			continue
		}
		_, minutes, _ := strings.Cut(s.Time, ":")
		s.Time = fmt.Sprintf("%02d:%s", convertHour(hour, answer), minutes)
		messages = append(messages, fmt.Sprintf("%q 일정이 %s %d시 (%s)로 저장되었습니다.", s.Title, answer, hour, s.Time))
	}

	if len(messages) == 0 {
		return out, "입력을 처리했습니다.", nil
	}
	return out, strings.Join(messages, " "), nil
}

// convertHour maps a 12-hour clock reading to 24-hour time.
func convertHour(hour int, answer string) int {
	switch {
	case answer == normalize.Afternoon && hour != 12:
		return hour + 12
	case answer == normalize.Morning && hour == 12:
		return 0
	}
	return hour
}
