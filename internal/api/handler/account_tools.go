package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/campaign-guardian-api/infrastructure/integrator/meta"
	"github.com/vfg2006/campaign-guardian-api/internal/config"
	"github.com/vfg2006/campaign-guardian-api/internal/domain"
	"github.com/vfg2006/campaign-guardian-api/pkg/log"
)

const dateLayout = "2006-01-02"

// GetAccountInfoInput é a entrada da ferramenta get_account_info. Sem
// account_id, usa a conta configurada.
type GetAccountInfoInput struct {
	AccountID string `json:"account_id,omitempty"`
}

func GetAccountInfo(service meta.Integrator, cfg *config.Config) http.Handler {
	const tool = "get_account_info"

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input GetAccountInfoInput
		if err := decodeToolInput(r, &input); err != nil {
			writeToolError(w, r, tool, "entrada inválida: "+err.Error())
			return
		}

		accountID := input.AccountID
		if accountID == "" {
			accountID = cfg.Meta.AccountID
		}

		if accountID == "" {
			writeToolError(w, r, tool, "account_id é obrigatório quando não há conta padrão configurada")
			return
		}

		logger.WithField("account_id", accountID).Info("tools: buscando dados da conta")

		info, err := service.AccountInfo(accountID)
		if err != nil {
			writeToolError(w, r, tool, err.Error())
			return
		}

		writeToolResult(w, tool, info)
	})
}

// GetInsightsInput é a entrada da ferramenta get_insights. Datas no formato
// YYYY-MM-DD; sem datas, os últimos 7 dias. Level: account, campaign, adset
// ou ad (padrão campaign).
type GetInsightsInput struct {
	AccountID string `json:"account_id,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Level     string `json:"level,omitempty"`
}

func GetInsights(service meta.Integrator, cfg *config.Config) http.Handler {
	const tool = "get_insights"

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input GetInsightsInput
		if err := decodeToolInput(r, &input); err != nil {
			writeToolError(w, r, tool, "entrada inválida: "+err.Error())
			return
		}

		accountID := input.AccountID
		if accountID == "" {
			accountID = cfg.Meta.AccountID
		}

		filters := domain.InsightFilters{Level: input.Level}

		if input.StartDate != "" {
			startDate, err := time.Parse(dateLayout, input.StartDate)
			if err != nil {
				writeToolError(w, r, tool, "start_date inválida, esperado YYYY-MM-DD: "+input.StartDate)
				return
			}
			filters.StartDate = &startDate
		}

		if input.EndDate != "" {
			endDate, err := time.Parse(dateLayout, input.EndDate)
			if err != nil {
				writeToolError(w, r, tool, "end_date inválida, esperado YYYY-MM-DD: "+input.EndDate)
				return
			}
			filters.EndDate = &endDate
		}

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"level":      input.Level,
		}).Info("tools: buscando insights da conta")

		insights, err := service.Insights(accountID, filters)
		if err != nil {
			writeToolError(w, r, tool, err.Error())
			return
		}

		writeToolResult(w, tool, map[string]any{
			"account_id": accountID,
			"insights":   insights,
		})
	})
}

// GetCampaignsInput é a entrada da ferramenta get_campaigns. O filtro de
// status é opcional (ex.: ["ACTIVE"]).
type GetCampaignsInput struct {
	AccountID    string   `json:"account_id,omitempty"`
	StatusFilter []string `json:"status_filter,omitempty"`
}

func GetCampaigns(service meta.Integrator, cfg *config.Config) http.Handler {
	const tool = "get_campaigns"

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input GetCampaignsInput
		if err := decodeToolInput(r, &input); err != nil {
			writeToolError(w, r, tool, "entrada inválida: "+err.Error())
			return
		}

		accountID := input.AccountID
		if accountID == "" {
			accountID = cfg.Meta.AccountID
		}

		logger.WithFields(log.Fields{
			"account_id":    accountID,
			"status_filter": input.StatusFilter,
		}).Info("tools: listando campanhas da conta")

		campaigns, err := service.Campaigns(accountID, input.StatusFilter)
		if err != nil {
			writeToolError(w, r, tool, err.Error())
			return
		}

		writeToolResult(w, tool, map[string]any{
			"account_id": accountID,
			"campaigns":  campaigns,
		})
	})
}

// GetAdSetsInput é a entrada da ferramenta get_adsets.
type GetAdSetsInput struct {
	CampaignID string `json:"campaign_id"`
}

func GetAdSets(service meta.Integrator) http.Handler {
	const tool = "get_adsets"

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input GetAdSetsInput
		if err := decodeToolInput(r, &input); err != nil {
			writeToolError(w, r, tool, "entrada inválida: "+err.Error())
			return
		}

		if input.CampaignID == "" {
			writeToolError(w, r, tool, "campaign_id é obrigatório")
			return
		}

		logger.WithField("campaign_id", input.CampaignID).Info("tools: listando conjuntos de anúncios")

		adSets, err := service.AdSets(input.CampaignID)
		if err != nil {
			writeToolError(w, r, tool, err.Error())
			return
		}

		writeToolResult(w, tool, map[string]any{
			"campaign_id": input.CampaignID,
			"adsets":      adSets,
		})
	})
}

// GetAdsInput é a entrada da ferramenta get_ads.
type GetAdsInput struct {
	AdSetID string `json:"adset_id"`
}

func GetAds(service meta.Integrator) http.Handler {
	const tool = "get_ads"

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input GetAdsInput
		if err := decodeToolInput(r, &input); err != nil {
			writeToolError(w, r, tool, "entrada inválida: "+err.Error())
			return
		}

		if input.AdSetID == "" {
			writeToolError(w, r, tool, "adset_id é obrigatório")
			return
		}

		logger.WithField("adset_id", input.AdSetID).Info("tools: listando anúncios do conjunto")

		ads, err := service.Ads(input.AdSetID)
		if err != nil {
			writeToolError(w, r, tool, err.Error())
			return
		}

		writeToolResult(w, tool, map[string]any{
			"adset_id": input.AdSetID,
			"ads":      ads,
		})
	})
}
