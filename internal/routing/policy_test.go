package routing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/lifeone/internal/model"
	"github.com/Veraticus/lifeone/internal/rules"
)

func TestPolicy_Route(t *testing.T) {
	policy := New(rules.Default())

	tests := []struct {
		name      string
		text      string
		reason    model.Reason
		canHandle bool
	}{
		{name: "receipt photo", text: "영수증 사진 정리해줘", reason: model.ReasonMediaAttachment},
		{name: "modification", text: "내일 회의 시간 변경해줘", reason: model.ReasonModification},
		{name: "deletion", text: "가계부에서 국수 삭제해줘", reason: model.ReasonDeletion},
		{name: "deletion beats local keywords", text: "내일 일정 지워줘 5000원", reason: model.ReasonDeletion},
		{name: "weather", text: "날씨 어때", reason: model.ReasonExternalKnowledge},
		{name: "case insensitive world keyword", text: "GTA6 언제 나와", reason: model.ReasonExternalKnowledge},
		{name: "search inside personal data stays local", text: "메모에서 회의록 검색", reason: model.ReasonLocalKeyword, canHandle: true},
		{
			name:   "long question",
			text:   "지난 몇 달 동안 내가 쓴 돈의 흐름을 보면 어떤 패턴이 있고 앞으로는 어떻게 관리하는 게 좋을지 정리해서 설명해줄 수 있을까?",
			reason: model.ReasonComplexQuery,
		},
		{name: "short question is fine", text: "내일 일정 있어?", reason: model.ReasonLocalKeyword, canHandle: true},
		{name: "local keyword", text: "친구랑 약속 잡았어", reason: model.ReasonLocalKeyword, canHandle: true},
		{name: "currency amount", text: "국수 5000원", reason: model.ReasonCurrencyAmount, canHandle: true},
		{name: "amount with separator", text: "국수 5,000원", reason: model.ReasonCurrencyAmount, canHandle: true},
		{name: "amount in man units", text: "택시 3만원", reason: model.ReasonCurrencyAmount, canHandle: true},
		{name: "amount in spaced man units", text: "점심 2만 원", reason: model.ReasonCurrencyAmount, canHandle: true},
		{name: "date pattern", text: "3월 1일 운동", reason: model.ReasonDatePattern, canHandle: true},
		{name: "relative date word", text: "어제 운동함", reason: model.ReasonDatePattern, canHandle: true},
		{name: "no intent", text: "안녕하세요", reason: model.ReasonNoLocalIntent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Route(tt.text)
			assert.Equal(t, tt.reason, got.Reason)
			assert.Equal(t, tt.canHandle, got.CanHandle)
		})
	}
}

func TestPolicy_DeletionAlwaysDelegates(t *testing.T) {
	policy := New(rules.Default())
	r := rules.Default()

	for _, del := range r.DeletionKeywords {
		for _, local := range r.LocalKeywords {
			text := strings.Join([]string{local, del, "5000원", "내일"}, " ")
			assert.False(t, policy.Route(text).CanHandle, text)
		}
	}
}

func TestPolicy_Rules(t *testing.T) {
	reasons := New(rules.Default()).Rules()

	assert.Equal(t, []model.Reason{
		model.ReasonMediaAttachment,
		model.ReasonModification,
		model.ReasonDeletion,
		model.ReasonExternalKnowledge,
		model.ReasonComplexQuery,
		model.ReasonLocalKeyword,
		model.ReasonCurrencyAmount,
		model.ReasonDatePattern,
		model.ReasonNoLocalIntent,
	}, reasons)
}
