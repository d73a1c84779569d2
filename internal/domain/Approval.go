package domain

import "time"

// ApprovalStatus é o estado do ciclo de vida de uma aprovação pendente.
// Transições válidas: pending -> approved | rejected | expired. Estados terminais
// não admitem novas transições.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
	ApprovalStatusExpired  ApprovalStatus = "expired"
)

// ApprovalDecision é a decisão explícita enviada por quem resolve uma aprovação.
type ApprovalDecision string

const (
	DecisionApprove ApprovalDecision = "APPROVE"
	DecisionReject  ApprovalDecision = "REJECT"
)

// ApprovalPayload carrega os dados da ação proposta (as entidades afetadas),
// nunca um callable. A execução é despachada pelo serviço de aprovação.
type ApprovalPayload struct {
	CampaignIDs []string `json:"campaign_ids,omitempty"`
	AccountID   string   `json:"account_id,omitempty"`
	Reason      string   `json:"reason,omitempty"`
}

// Approval é uma ação mutante aguardando confirmação humana. Mantida apenas em
// memória durante a vida do processo.
type Approval struct {
	ID        string          `json:"id"`
	Action    ActionTag       `json:"action"`
	Payload   ApprovalPayload `json:"payload"`
	Status    ApprovalStatus  `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// Terminal indica se o status não admite mais transições.
func (s ApprovalStatus) Terminal() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusRejected || s == ApprovalStatusExpired
}

// CampaignActionResult é o resultado por item da execução de uma ação aprovada.
// Falhas parciais são esperadas e reportadas item a item.
type CampaignActionResult struct {
	CampaignID string `json:"campaign_id"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

// ApprovalSummary é o retorno da criação de uma aprovação.
type ApprovalSummary struct {
	ID        string          `json:"id"`
	Action    ActionTag       `json:"action"`
	Payload   ApprovalPayload `json:"payload"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// ApprovalResolution é o retorno da resolução de uma aprovação.
type ApprovalResolution struct {
	ID      string                 `json:"id"`
	Status  ApprovalStatus         `json:"status"`
	Results []CampaignActionResult `json:"results,omitempty"`
}
