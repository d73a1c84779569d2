package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"

	metadomain "github.com/vfg2006/campaign-guardian-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-guardian-api/internal/domain"
)

func TestNewAccountInfoFromResponse(t *testing.T) {
	tests := []struct {
		name     string
		response *metadomain.AccountInfoResponse
		expected *domain.AccountInfo
	}{
		{
			name: "conta ativa com saldo em centavos",
			response: &metadomain.AccountInfoResponse{
				ID:            "act_123",
				Name:          "Acme Store",
				Currency:      "BRL",
				AccountStatus: 1,
				Balance:       "152790",
			},
			expected: &domain.AccountInfo{
				ID:       "act_123",
				Name:     "Acme Store",
				Currency: "BRL",
				Status:   "ACTIVE",
				Balance:  1527.9,
			},
		},
		{
			name: "campos ausentes viram N/A e zero",
			response: &metadomain.AccountInfoResponse{
				ID:            "act_456",
				AccountStatus: 999,
			},
			expected: &domain.AccountInfo{
				ID:       "act_456",
				Name:     "N/A",
				Currency: "N/A",
				Status:   "N/A",
				Balance:  0,
			},
		},
		{
			name: "conta encerrada",
			response: &metadomain.AccountInfoResponse{
				ID:            "act_789",
				Name:          "Old Shop",
				Currency:      "USD",
				AccountStatus: 101,
				Balance:       "0",
			},
			expected: &domain.AccountInfo{
				ID:       "act_789",
				Name:     "Old Shop",
				Currency: "USD",
				Status:   "CLOSED",
				Balance:  0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewAccountInfoFromResponse(tt.response))
		})
	}
}

func TestNewCampaignInsightFromResponse(t *testing.T) {
	t.Run("linha completa com roas de compra", func(t *testing.T) {
		insight := NewCampaignInsightFromResponse(metadomain.Insight{
			CampaignID:   "123",
			CampaignName: "Campaign A",
			CTR:          "1.25",
			CPM:          "32.5",
			Frequency:    "2.1",
			Spend:        "350.75",
			Impressions:  "10000",
			Clicks:       "125",
			PurchaseROAS: []metadomain.ActionValue{
				{ActionType: "omni_purchase", Value: "3.4"},
				{ActionType: "purchase", Value: "2.9"},
			},
		})

		assert.Equal(t, "123", insight.CampaignID)
		assert.Equal(t, 1.25, insight.Metrics.CTR)
		assert.Equal(t, 32.5, insight.Metrics.CPM)
		assert.Equal(t, 2.1, insight.Metrics.Frequency)
		assert.Equal(t, 350.75, insight.Metrics.Spend)

		if assert.NotNil(t, insight.Metrics.Impressions) {
			assert.Equal(t, 10000, *insight.Metrics.Impressions)
		}
		if assert.NotNil(t, insight.Metrics.Clicks) {
			assert.Equal(t, 125, *insight.Metrics.Clicks)
		}

		// O agregado omnichannel é sempre o primeiro elemento da lista.
		if assert.NotNil(t, insight.Metrics.ROAS) {
			assert.Equal(t, 3.4, *insight.Metrics.ROAS)
		}
	})

	t.Run("campos ausentes ou mal formados viram zero ou nil", func(t *testing.T) {
		insight := NewCampaignInsightFromResponse(metadomain.Insight{
			CampaignID:  "456",
			CTR:         "not-a-number",
			Impressions: "10k",
		})

		assert.Zero(t, insight.Metrics.CTR)
		assert.Zero(t, insight.Metrics.CPM)
		assert.Nil(t, insight.Metrics.Impressions)
		assert.Nil(t, insight.Metrics.Clicks)
		assert.Nil(t, insight.Metrics.ROAS)
	})
}

func TestNewCampaignFromResponse(t *testing.T) {
	campaign := NewCampaignFromResponse(metadomain.Campaign{
		ID:          "123",
		Name:        "Campaign A",
		Status:      "ACTIVE",
		Objective:   "OUTCOME_SALES",
		DailyBudget: "5000",
	})

	assert.Equal(t, domain.Campaign{
		ID:          "123",
		Name:        "Campaign A",
		Status:      domain.CampaignStatusActive,
		Objective:   "OUTCOME_SALES",
		DailyBudget: 50,
	}, campaign)
}

func TestParseCents(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected float64
	}{
		{name: "centavos inteiros", value: "5000", expected: 50},
		{name: "arredonda para duas casas", value: "12345", expected: 123.45},
		{name: "valor vazio", value: "", expected: 0},
		{name: "valor mal formado", value: "abc", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseCents(tt.value))
		})
	}
}
