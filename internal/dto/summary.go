package dto

import "financial-assistant/internal/models"

const (
	DefaultSummaryLimit = 100
	DefaultContextLimit = 50
)

// SummaryRequest selects the transactions to summarize. A user filter wins over a category filter.
type SummaryRequest struct {
	Limit    int    `json:"limit" validate:"min=1,max=500"`
	UserID   string `json:"user_id,omitempty" validate:"omitempty,user_id"`
	Category string `json:"category,omitempty" validate:"max=50,no_markup"`
}

// SummaryResponse is the rule-based summary
type SummaryResponse struct {
	Summary          models.SummaryReport `json:"summary"`
	TextSummary      string               `json:"text_summary"`
	TransactionCount int                  `json:"transaction_count"`
}

// LLMSummaryResponse is the model-written summary
type LLMSummaryResponse struct {
	Summary          string           `json:"summary"`
	Status           models.LLMStatus `json:"status"`
	TransactionCount int              `json:"transaction_count"`
	Model            string           `json:"model"`
}

// AskRequest is a free-form question answered from the first context_limit transactions
type AskRequest struct {
	Question     string `json:"question" validate:"required,max=1000,safe_text"`
	ContextLimit int    `json:"context_limit" validate:"min=1,max=200"`
}

type AskResponse struct {
	Question    string           `json:"question"`
	Answer      string           `json:"answer"`
	Status      models.LLMStatus `json:"status"`
	ContextSize int              `json:"context_size"`
}
