package model

// ProcessRequest is the body of a text-processing request.
type ProcessRequest struct {
	ContextData *Snapshot `json:"contextData" validate:"required"`
	Text        string    `json:"text" validate:"required,max=2000"`
}

// ProcessResponse is the result of processing a single utterance.
type ProcessResponse struct {
	ParseResult          *string            `json:"parseResult"`
	Answer               string             `json:"answer"`
	UsedModel            string             `json:"usedModel"`
	ProcessingDetails    string             `json:"processingDetails"`
	ClarificationOptions []string           `json:"clarificationOptions,omitempty"`
	DataExtraction       ExtractionResult   `json:"dataExtraction"`
	Clarification        ClarificationState `json:"-"`
	CanHandle            bool               `json:"canHandle"`
	ClarificationNeeded  bool               `json:"clarificationNeeded"`
}

// ClarifyRequest carries the caller's answer to a clarification question.
type ClarifyRequest struct {
	Answer  string            `json:"answer" validate:"required"`
	Pending *ExtractionResult `json:"pending" validate:"required"`
}

// ClarifyResponse is the resolved extraction after a clarification answer.
type ClarifyResponse struct {
	Answer         string           `json:"answer"`
	DataExtraction ExtractionResult `json:"dataExtraction"`
}
