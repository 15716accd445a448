package model

// Reason explains a routing decision.
type Reason string

// Routing reasons, listed in decision-table order.
const (
	ReasonMediaAttachment   Reason = "media_attachment"
	ReasonModification      Reason = "modification_unsupported"
	ReasonDeletion          Reason = "deletion_unsupported"
	ReasonExternalKnowledge Reason = "external_knowledge"
	ReasonComplexQuery      Reason = "complex_query"
	ReasonLocalKeyword      Reason = "local_keyword"
	ReasonCurrencyAmount    Reason = "currency_amount"
	ReasonDatePattern       Reason = "date_pattern"
	ReasonNoLocalIntent     Reason = "no_local_intent"
)

var reasonMessages = map[Reason]string{
	ReasonMediaAttachment:   "OCR 처리 필요 - 원격 서비스로 전달",
	ReasonModification:      "데이터 수정 요청 - 원격 서비스로 전달",
	ReasonDeletion:          "데이터 삭제 요청 - 원격 서비스로 전달",
	ReasonExternalKnowledge: "웹 검색 필요 - 원격 서비스로 전달",
	ReasonComplexQuery:      "복잡한 질문 - 원격 서비스로 전달",
	ReasonLocalKeyword:      "로컬 모델에서 처리 가능",
	ReasonCurrencyAmount:    "가계부 데이터 - 로컬 모델에서 처리",
	ReasonDatePattern:       "날짜 데이터 - 로컬 모델에서 처리",
	ReasonNoLocalIntent:     "키워드 미발견 - 원격 서비스로 전달",
}

// Message returns the diagnostic text shown to users for the reason.
func (r Reason) Message() string {
	if msg, ok := reasonMessages[r]; ok {
		return msg
	}
	return string(r)
}

// RoutingDecision records whether an utterance can be handled locally and why.
type RoutingDecision struct {
	Reason    Reason `json:"reason"`
	CanHandle bool   `json:"canHandle"`
}
