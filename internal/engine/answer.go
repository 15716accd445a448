package engine

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Veraticus/lifeone/internal/model"
)

var won = message.NewPrinter(language.Korean)

// composeAnswer builds the confirmation shown to the user, one sentence per record.
func composeAnswer(res model.ExtractionResult) string {
	var parts []string

	for _, e := range res.Expenses {
		kind := "지출로"
		if e.Kind == model.KindIncome {
			kind = "수입으로"
		}
		parts = append(parts, won.Sprintf("%s %d원이 %s 저장되었습니다.", e.Item, e.Amount, kind))
	}
	for _, s := range res.Schedule {
		parts = append(parts, fmt.Sprintf("%s이(가) %s에 등록되었습니다.", s.Title, s.Date))
	}
	for _, c := range res.Contacts {
		parts = append(parts, fmt.Sprintf("%s이(가) 저장되었습니다.", c.Name))
	}
	for range res.Diary {
		parts = append(parts, "메모가 저장되었습니다.")
	}

	if len(parts) == 0 {
		return "입력을 처리했습니다."
	}
	return strings.Join(parts, " ")
}

func processingDetails(usedModel string, res model.ExtractionResult) string {
	source := "로컬 모델(" + usedModel + ")"
	if usedModel == FallbackModel {
		source = "규칙 기반 추출기"
	}
	return fmt.Sprintf("%s로 처리 완료. 추출된 데이터: %d개 지출/수입, %d개 일정, %d개 연락처, %d개 메모",
		source, len(res.Expenses), len(res.Schedule), len(res.Contacts), len(res.Diary))
}

func clarificationDetails(clar model.ClarificationState) string {
	switch {
	case clar.AmbiguousHour != nil:
		return fmt.Sprintf("애매한 시간 감지: %d시", *clar.AmbiguousHour)
	case len(clar.AmbiguousCategories) > 0:
		labels := lo.Map(clar.AmbiguousCategories, func(c model.Category, _ int) string {
			return c.Label()
		})
		return "여러 카테고리 파싱: " + strings.Join(labels, ", ")
	}
	return "확인 필요"
}
