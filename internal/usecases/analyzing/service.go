package analyzing

import (
	"fmt"
	"math"

	"github.com/vfg2006/campaign-guardian-api/internal/config"
	"github.com/vfg2006/campaign-guardian-api/internal/domain"
)

const initialScore = 100

// Penalidades fixas aplicadas ao score por cada limiar violado.
const (
	penaltyCTRCritical       = 40
	penaltyCTRLow            = 25
	penaltyCPMCritical       = 30
	penaltyCPMHigh           = 20
	penaltyFrequencyCritical = 30
	penaltyFrequencyWarning  = 15
	penaltyROASPoor          = 20
)

// AnalysisContext carrega dados opcionais que refinam a análise.
type AnalysisContext struct {
	CampaignBudget *float64
}

// Analyzer define a interface do analisador de saúde de métricas.
type Analyzer interface {
	// Analyze avalia uma foto de métricas e devolve problemas, recomendações,
	// candidatas a notificação e o score agregado. Função pura: sem I/O e sem
	// erro para condições de negócio.
	Analyze(metrics domain.MetricsSnapshot, actx *AnalysisContext) *domain.AnalysisResult
}

type Service struct {
	thresholds config.Analysis
}

func NewService(cfg *config.Config) Analyzer {
	return &Service{thresholds: cfg.Analysis}
}

// Analyze implementa a avaliação em duas fases: regras por métrica acumulam
// penalidades e um status provisório (apenas os ramos de CTR atribuem status
// nesta fase), e ao final o status é corrigido pelos pontos de corte do score
// agregado. A ordem das fases é parte do contrato e não pode ser alterada.
func (s *Service) Analyze(metrics domain.MetricsSnapshot, actx *AnalysisContext) *domain.AnalysisResult {
	t := s.thresholds

	// Entradas malformadas nunca são erro: qualquer valor não numérico vale zero.
	ctr := sanitize(metrics.CTR)
	cpm := sanitize(metrics.CPM)
	frequency := sanitize(metrics.Frequency)
	spend := sanitize(metrics.Spend)

	result := &domain.AnalysisResult{
		Issues:          make([]string, 0),
		Recommendations: make([]string, 0),
		Notifications:   make([]domain.Notification, 0),
		Score:           initialScore,
		Status:          domain.HealthStatusOptimal,
	}

	// Fase 1 — CTR
	switch {
	case ctr < t.CTRCritical:
		result.Issues = append(result.Issues, fmt.Sprintf("Critical CTR: %.2f%%", ctr))
		result.Recommendations = append(result.Recommendations, "URGENT: Review ad creative and audience targeting")
		result.Score -= penaltyCTRCritical
		result.Status = domain.HealthStatusCritical

		if spend > t.SpendAlert {
			result.Notifications = append(result.Notifications, domain.Notification{
				Priority:         domain.PriorityCritical,
				Message:          fmt.Sprintf("Campaign CTR critically low (%.2f%%) with spend of $%.2f", ctr, spend),
				SuggestedAction:  domain.ActionPauseCampaign,
				RequiresApproval: true,
			})
		}
	case ctr < t.CTRAverage:
		result.Issues = append(result.Issues, fmt.Sprintf("Low CTR: %.2f%%", ctr))
		result.Recommendations = append(result.Recommendations, "Consider refreshing creatives or adjusting the audience")
		result.Score -= penaltyCTRLow
		result.Status = domain.HealthStatusNeedsImprovement
	case ctr > t.CTRGood:
		result.Recommendations = append(result.Recommendations, fmt.Sprintf("Great CTR (%.2f%%). Consider scaling up the budget", ctr))

		if actx != nil && actx.CampaignBudget != nil && *actx.CampaignBudget < 100 {
			suggested := math.Min(*actx.CampaignBudget*2, t.BudgetCap)
			result.Notifications = append(result.Notifications, domain.Notification{
				Priority:        domain.PrioritySuccess,
				Message:         fmt.Sprintf("Campaign performing well (CTR %.2f%%). Budget increase recommended", ctr),
				SuggestedAction: domain.ActionIncreaseBudget,
				SuggestedValue:  &suggested,
			})
		}
	}

	// Fase 1 — CPM
	switch {
	case cpm > t.CPMCritical:
		result.Issues = append(result.Issues, fmt.Sprintf("Very high CPM: $%.2f", cpm))
		result.Recommendations = append(result.Recommendations, "Review audience targeting, auction competition may be high")
		result.Score -= penaltyCPMCritical

		result.Notifications = append(result.Notifications, domain.Notification{
			Priority:        domain.PriorityUrgent,
			Message:         fmt.Sprintf("CPM at $%.2f, well above the acceptable ceiling", cpm),
			SuggestedAction: domain.ActionReviewTargeting,
		})
	case cpm > t.CPMAverage:
		result.Issues = append(result.Issues, fmt.Sprintf("High CPM: $%.2f", cpm))
		result.Recommendations = append(result.Recommendations, "Test broader audiences to lower delivery costs")
		result.Score -= penaltyCPMHigh
	}

	// Fase 1 — Frequência
	switch {
	case frequency > t.FrequencyCritical:
		result.Issues = append(result.Issues, fmt.Sprintf("Ad fatigue: frequency at %.1f", frequency))
		result.Recommendations = append(result.Recommendations, "Refresh creatives immediately, audience is saturated")
		result.Score -= penaltyFrequencyCritical

		result.Notifications = append(result.Notifications, domain.Notification{
			Priority:         domain.PriorityUrgent,
			Message:          fmt.Sprintf("Frequency at %.1f, audience is seeing the same ad too often", frequency),
			SuggestedAction:  domain.ActionRefreshCreative,
			RequiresApproval: true,
		})
	case frequency > t.FrequencyWarning:
		result.Issues = append(result.Issues, fmt.Sprintf("Elevated frequency: %.1f", frequency))
		result.Recommendations = append(result.Recommendations, "Prepare new creatives to avoid ad fatigue")
		result.Score -= penaltyFrequencyWarning
	}

	// Fase 1 — ROAS (só avaliado quando informado)
	if metrics.ROAS != nil {
		roas := sanitize(*metrics.ROAS)
		switch {
		case roas < t.ROASPoor:
			result.Issues = append(result.Issues, fmt.Sprintf("Low ROAS: %.2f", roas))
			result.Recommendations = append(result.Recommendations, "Review the conversion funnel and landing pages")
			result.Score -= penaltyROASPoor
		case roas > t.ROASGood:
			result.Recommendations = append(result.Recommendations, fmt.Sprintf("Strong ROAS (%.2fx). Consider increasing investment", roas))
		}
	}

	// Fase 2 — correção final do status pelo score agregado. Os pontos de corte
	// prevalecem sobre as atribuições provisórias da fase 1, exceto na faixa
	// 80..94, onde o status provisório (ou optimal) permanece.
	switch {
	case result.Score < 40:
		result.Status = domain.HealthStatusCritical
	case result.Score < 60:
		result.Status = domain.HealthStatusPoor
	case result.Score < 80:
		result.Status = domain.HealthStatusNeedsImprovement
	case result.Score >= 95:
		result.Status = domain.HealthStatusExcellent
	}

	return result
}

// sanitize coage valores não numéricos (NaN, ±Inf) para zero antes de qualquer
// comparação de limiar.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
