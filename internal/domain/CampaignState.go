package domain

import "time"

// CampaignState é o último estado observado de uma campanha, usado como linha de
// base pelo detector de mudanças. Persistido como um mapeamento plano por ID de
// campanha (arquivo JSON ou Postgres, conforme configuração).
type CampaignState struct {
	CTR         float64   `json:"ctr"`
	CPM         float64   `json:"cpm"`
	Spend       float64   `json:"spend"`
	Frequency   float64   `json:"frequency"`
	LastChecked time.Time `json:"last_checked"`

	// Valores anteriores mantidos apenas para relatórios.
	PreviousCTR float64 `json:"previous_ctr"`
	PreviousCPM float64 `json:"previous_cpm"`
}

// ChangeEventType identifica o tipo de mudança significativa detectada.
type ChangeEventType string

const (
	ChangeCTRCrash         ChangeEventType = "CTR_CRASH"
	ChangeCPMSpike         ChangeEventType = "CPM_SPIKE"
	ChangePerformanceBoost ChangeEventType = "PERFORMANCE_BOOST"
)

// ChangeEvent é um evento efêmero emitido quando uma métrica de campanha muda de
// forma significativa entre duas observações.
type ChangeEvent struct {
	Type           ChangeEventType      `json:"type"`
	Priority       NotificationPriority `json:"priority"`
	Message        string               `json:"message"`
	Recommendation string               `json:"recommendation"`
}
