package dto

type AuditEntry struct {
	UserID     string `json:"user_id"`
	Persona    string `json:"persona"`
	LifeEvent  string `json:"life_event"`
	Product    string `json:"product"`
	Confidence int    `json:"confidence"`
	Reason     string `json:"reason"`
	Guardrail  string `json:"guardrail"`
}

type AllUsersResponse struct {
	TotalUsers int          `json:"total_users"`
	Users      []AuditEntry `json:"users"`
}

type DistinctUser struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

type DistinctUsersResponse struct {
	DistinctUsers []DistinctUser `json:"distinct_users"`
}

type ConfidenceAnalyticsResponse struct {
	AverageConfidence float64 `json:"average_confidence"`
}

type ProductStatsResponse struct {
	ProductDistribution map[string]int `json:"product_distribution"`
	PersonaDistribution map[string]int `json:"persona_distribution"`
}

type GuardrailBlocksResponse struct {
	TotalUsers   int          `json:"total_users"`
	TotalBlocked int          `json:"total_blocked"`
	BlockedCases []AuditEntry `json:"blocked_cases"`
}

type AuditLogEntry struct {
	EmployeeID string `json:"employee_id"`
	CustomerID string `json:"customer_id"`
	Product    string `json:"product_recommended"`
	LifeEvent  string `json:"life_event"`
	Persona    string `json:"persona"`
	Timestamp  string `json:"timestamp"`
}

type AuditLogResponse struct {
	Logs []AuditLogEntry `json:"logs"`
}
