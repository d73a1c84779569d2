package domain

// HealthStatus é o status de saúde agregado de uma campanha ou conta.
type HealthStatus string

const (
	HealthStatusOptimal          HealthStatus = "optimal"
	HealthStatusExcellent        HealthStatus = "excellent"
	HealthStatusNeedsImprovement HealthStatus = "needs_improvement"
	HealthStatusPoor             HealthStatus = "poor"
	HealthStatusCritical         HealthStatus = "critical"
)

// NotificationPriority define a prioridade de uma notificação gerada pela análise.
type NotificationPriority string

const (
	PriorityCritical NotificationPriority = "critical"
	PriorityUrgent   NotificationPriority = "urgent"
	PriorityWarning  NotificationPriority = "warning"
	PriorityInfo     NotificationPriority = "info"
	PrioritySuccess  NotificationPriority = "success"
)

// ActionTag identifica a ação sugerida por uma notificação ou gerida por uma aprovação.
type ActionTag string

const (
	ActionPauseCampaign        ActionTag = "PAUSE_CAMPAIGN"
	ActionPauseCampaigns       ActionTag = "PAUSE_CAMPAIGNS"
	ActionIncreaseBudget       ActionTag = "INCREASE_BUDGET"
	ActionReviewTargeting      ActionTag = "REVIEW_TARGETING"
	ActionRefreshCreative      ActionTag = "REFRESH_CREATIVE"
	ActionExecuteOptimizations ActionTag = "EXECUTE_OPTIMIZATIONS"
)

// Notification é uma candidata a notificação produzida pelo analisador.
type Notification struct {
	Priority         NotificationPriority `json:"priority"`
	Message          string               `json:"message"`
	SuggestedAction  ActionTag            `json:"suggested_action,omitempty"`
	SuggestedValue   *float64             `json:"suggested_value,omitempty"`
	RequiresApproval bool                 `json:"requires_approval"`
}

// AnalysisResult é o resultado efêmero de uma análise de métricas.
// Nunca é persistido; recalculado a cada chamada.
type AnalysisResult struct {
	Issues          []string       `json:"issues"`
	Recommendations []string       `json:"recommendations"`
	Notifications   []Notification `json:"notifications"`
	Score           int            `json:"score"`
	Status          HealthStatus   `json:"status"`
}
