package model

import "time"

// HistoryEntry is one processed request as kept in the local history log.
type HistoryEntry struct {
	CreatedAt         time.Time        `json:"timestamp"`
	ID                string           `json:"id"`
	Input             string           `json:"input"`
	UsedModel         string           `json:"usedModel"`
	Reason            Reason           `json:"reason"`
	Answer            string           `json:"answer"`
	ProcessingDetails string           `json:"processingDetails"`
	Output            ExtractionResult `json:"output"`
	CanHandle         bool             `json:"canHandle"`
	Clarification     bool             `json:"clarificationNeeded"`
}
