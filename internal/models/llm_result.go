package models

// LLMStatus tells callers how an LLM request ended
type LLMStatus string

const (
	LLMStatusOK       LLMStatus = "ok"
	LLMStatusDisabled LLMStatus = "disabled"
	LLMStatusFailed   LLMStatus = "failed"
	LLMStatusEmpty    LLMStatus = "empty"
)

// LLMResult is the outcome of a call to the language model
type LLMResult struct {
	Status LLMStatus `json:"status"`
	Text   string    `json:"text"`
	Model  string    `json:"model,omitempty"`
	Err    error     `json:"-"`
}

// OK reports whether the model produced text
func (r LLMResult) OK() bool {
	return r.Status == LLMStatusOK
}
