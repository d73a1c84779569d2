package domain

import "time"

// CampaignStatus é o status efetivo de uma campanha no Meta.
type CampaignStatus string

const (
	CampaignStatusActive  CampaignStatus = "ACTIVE"
	CampaignStatusPaused  CampaignStatus = "PAUSED"
	CampaignStatusDeleted CampaignStatus = "DELETED"
)

type Campaign struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Status      CampaignStatus `json:"status"`
	Objective   string         `json:"objective"`
	DailyBudget float64        `json:"daily_budget,omitempty"`
}

type AdSet struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Status     CampaignStatus `json:"status"`
	CampaignID string         `json:"campaign_id"`
}

type Ad struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Status  CampaignStatus `json:"status"`
	AdSetID string         `json:"adset_id"`
}

// AccountInfo contém os dados básicos da conta de anúncios. Campos ausentes na
// resposta da API chegam como "N/A" ou zero.
type AccountInfo struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Currency string  `json:"currency"`
	Status   string  `json:"account_status"`
	Balance  float64 `json:"balance"`
}

// InsightFilters delimita o período e o nível das consultas de insights.
type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Level     string // account, campaign, adset ou ad
}

// CampaignInsight são as métricas de uma campanha já convertidas para numérico.
type CampaignInsight struct {
	CampaignID   string          `json:"campaign_id"`
	CampaignName string          `json:"campaign_name"`
	Metrics      MetricsSnapshot `json:"metrics"`
}
