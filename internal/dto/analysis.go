package dto

// AnalysisResponse is the recommendation surfaced to the analyst: the final
// (guardrail-reviewed) product plus explainability fields.
type AnalysisResponse struct {
	UserID        string `json:"user_id"`
	Persona       string `json:"persona"`
	LifeEvent     string `json:"life_event"`
	Product       string `json:"product"`
	Confidence    int    `json:"confidence"`
	Reason        string `json:"reason"`
	Guardrail     string `json:"guardrail"`
	GuardrailNote string `json:"guardrail_note"`
	Message       string `json:"message"`
}

// HistoryEntry is one prior audit row for a customer.
type HistoryEntry struct {
	UserID        string `json:"user_id"`
	Persona       string `json:"persona"`
	LifeEvent     string `json:"life_event"`
	Product       string `json:"product"`
	Confidence    int    `json:"confidence"`
	Reason        string `json:"reason"`
	Guardrail     string `json:"guardrail"`
	GuardrailNote string `json:"guardrail_note"`
	Timestamp     string `json:"timestamp"`
}
