package domain

// MetricsSnapshot representa uma foto imutável das métricas de anúncios para uma
// chamada de análise. Os campos são preenchidos pelo integrador do Meta; campos
// ausentes ou não numéricos chegam como zero.
type MetricsSnapshot struct {
	CTR         float64  `json:"ctr"`       // taxa de cliques, em percentual
	CPM         float64  `json:"cpm"`       // custo por mil impressões
	Frequency   float64  `json:"frequency"` // frequência média por usuário único
	Spend       float64  `json:"spend"`
	ROAS        *float64 `json:"roas,omitempty"`
	Impressions *int     `json:"impressions,omitempty"`
	Clicks      *int     `json:"clicks,omitempty"`
}

// CampaignMetrics contém o subconjunto de métricas usado pelo detector de mudanças.
type CampaignMetrics struct {
	CTR       float64 `json:"ctr"`
	CPM       float64 `json:"cpm"`
	Spend     float64 `json:"spend"`
	Frequency float64 `json:"frequency"`
}
