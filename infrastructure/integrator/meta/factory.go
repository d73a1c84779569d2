package meta

import (
	"strconv"

	metadomain "github.com/vfg2006/campaign-guardian-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-guardian-api/internal/domain"
	"github.com/vfg2006/campaign-guardian-api/pkg/utils"
)

// As fábricas convertem as respostas cruas da Graph API, onde tudo chega como
// string, para os tipos numéricos do domínio. Campo ausente ou mal formado
// vira zero ("N/A" nos textuais); a conversão nunca falha.

const notAvailable = "N/A"

// accountStatusNames mapeia o account_status numérico da Meta para o rótulo
// usado nas respostas.
var accountStatusNames = map[int]string{
	1:   "ACTIVE",
	2:   "DISABLED",
	3:   "UNSETTLED",
	7:   "PENDING_RISK_REVIEW",
	8:   "PENDING_SETTLEMENT",
	9:   "IN_GRACE_PERIOD",
	100: "PENDING_CLOSURE",
	101: "CLOSED",
	201: "ANY_ACTIVE",
	202: "ANY_CLOSED",
}

func NewAccountInfoFromResponse(response *metadomain.AccountInfoResponse) *domain.AccountInfo {
	info := &domain.AccountInfo{
		ID:       response.ID,
		Name:     response.Name,
		Currency: response.Currency,
		Status:   notAvailable,
		Balance:  parseCents(response.Balance),
	}

	if info.Name == "" {
		info.Name = notAvailable
	}

	if info.Currency == "" {
		info.Currency = notAvailable
	}

	if name, ok := accountStatusNames[response.AccountStatus]; ok {
		info.Status = name
	}

	return info
}

func NewCampaignInsightFromResponse(raw metadomain.Insight) domain.CampaignInsight {
	insight := domain.CampaignInsight{
		CampaignID:   raw.CampaignID,
		CampaignName: raw.CampaignName,
		Metrics: domain.MetricsSnapshot{
			CTR:       parseFloat(raw.CTR),
			CPM:       parseFloat(raw.CPM),
			Frequency: parseFloat(raw.Frequency),
			Spend:     parseFloat(raw.Spend),
		},
	}

	if raw.Impressions != "" {
		if impressions, err := strconv.Atoi(raw.Impressions); err == nil {
			insight.Metrics.Impressions = &impressions
		}
	}

	if raw.Clicks != "" {
		if clicks, err := strconv.Atoi(raw.Clicks); err == nil {
			insight.Metrics.Clicks = &clicks
		}
	}

	// O ROAS de compra vem como lista de action values; o agregado omnichannel
	// é o primeiro elemento.
	if len(raw.PurchaseROAS) > 0 {
		roas := parseFloat(raw.PurchaseROAS[0].Value)
		insight.Metrics.ROAS = &roas
	}

	return insight
}

func NewCampaignFromResponse(raw metadomain.Campaign) domain.Campaign {
	return domain.Campaign{
		ID:          raw.ID,
		Name:        raw.Name,
		Status:      domain.CampaignStatus(raw.Status),
		Objective:   raw.Objective,
		DailyBudget: parseCents(raw.DailyBudget),
	}
}

func NewAdSetFromResponse(raw metadomain.AdSet) domain.AdSet {
	return domain.AdSet{
		ID:         raw.ID,
		Name:       raw.Name,
		Status:     domain.CampaignStatus(raw.Status),
		CampaignID: raw.CampaignID,
	}
}

func NewAdFromResponse(raw metadomain.Ad) domain.Ad {
	return domain.Ad{
		ID:      raw.ID,
		Name:    raw.Name,
		Status:  domain.CampaignStatus(raw.Status),
		AdSetID: raw.AdSetID,
	}
}

func parseFloat(value string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}

	return parsed
}

// parseCents converte valores monetários que a Meta devolve em centavos.
func parseCents(value string) float64 {
	return utils.RoundWithTwoDecimalPlace(parseFloat(value) / 100)
}
