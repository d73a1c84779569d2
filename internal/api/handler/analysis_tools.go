package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-guardian-api/internal/domain"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/detecting"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/notifying"
	"github.com/vfg2006/campaign-guardian-api/pkg/log"
	"github.com/vfg2006/campaign-guardian-api/pkg/utils"
)

// Formatos de saída opcionais das ferramentas de análise.
const (
	FormatWhatsApp = "whatsapp"
	FormatSlack    = "slack"
)

// AnalyzeCampaignHealthInput é a entrada da ferramenta analyze_campaign_health.
// As métricas chegam como valores JSON arbitrários e são coagidas para número:
// campo ausente ou mal formado vale 0, nunca erro. campaign_id é opcional; quando
// presente, o detector de mudanças também roda e o estado da campanha é atualizado.
type AnalyzeCampaignHealthInput struct {
	Metrics        map[string]any `json:"metrics"`
	CampaignBudget any            `json:"campaign_budget,omitempty"`
	CampaignID     string         `json:"campaign_id,omitempty"`
	CampaignName   string         `json:"campaign_name,omitempty"`
	Format         string         `json:"format,omitempty"` // whatsapp ou slack
}

func AnalyzeCampaignHealth(
	analyzer analyzing.Analyzer,
	detector detecting.Detector,
	formatter notifying.Formatter,
) http.Handler {
	const tool = "analyze_campaign_health"

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input AnalyzeCampaignHealthInput
		if err := decodeToolInput(r, &input); err != nil {
			writeToolError(w, r, tool, "entrada inválida: "+err.Error())
			return
		}

		if input.Metrics == nil {
			writeToolError(w, r, tool, "metrics é obrigatório")
			return
		}

		metrics := metricsFromInput(input.Metrics)

		var actx *analyzing.AnalysisContext
		if input.CampaignBudget != nil {
			budget := utils.ToFloat(input.CampaignBudget)
			actx = &analyzing.AnalysisContext{CampaignBudget: &budget}
		}

		logger.WithFields(log.Fields{
			"campaign_id": input.CampaignID,
			"ctr":         metrics.CTR,
			"spend":       metrics.Spend,
		}).Info("tools: analisando saúde da campanha")

		result := analyzer.Analyze(metrics, actx)

		response := map[string]any{
			"analysis": result,
		}

		// Com campaign_id, o detector roda na mesma chamada e o estado
		// persistido da campanha é sobrescrito.
		if input.CampaignID != "" {
			events := detector.DetectChanges(input.CampaignID, domain.CampaignMetrics{
				CTR:       metrics.CTR,
				CPM:       metrics.CPM,
				Spend:     metrics.Spend,
				Frequency: metrics.Frequency,
			})

			response["campaign_id"] = input.CampaignID
			response["change_events"] = events
		}

		if input.Format != "" {
			summary := notifying.PerformanceSummary{
				AccountName:     input.CampaignName,
				Spend:           metrics.Spend,
				Score:           result.Score,
				Status:          result.Status,
				Issues:          result.Issues,
				Recommendations: result.Recommendations,
			}

			switch input.Format {
			case FormatWhatsApp:
				message, err := formatter.FormatWhatsApp(notifying.KindPerformanceSummary, summary)
				if err != nil {
					writeToolError(w, r, tool, err.Error())
					return
				}
				response["message"] = message

			case FormatSlack:
				blocks, err := formatter.FormatSlack(notifying.KindPerformanceSummary, summary)
				if err != nil {
					writeToolError(w, r, tool, err.Error())
					return
				}
				response["blocks"] = blocks

			default:
				writeToolError(w, r, tool, "format inválido, esperado whatsapp ou slack: "+input.Format)
				return
			}
		}

		writeToolResult(w, tool, response)
	})
}

// DetectCampaignChangesInput é a entrada da ferramenta detect_campaign_changes.
type DetectCampaignChangesInput struct {
	CampaignID   string         `json:"campaign_id"`
	CampaignName string         `json:"campaign_name,omitempty"`
	Metrics      map[string]any `json:"metrics"`
	Format       string         `json:"format,omitempty"`
}

func DetectCampaignChanges(detector detecting.Detector, formatter notifying.Formatter) http.Handler {
	const tool = "detect_campaign_changes"

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input DetectCampaignChangesInput
		if err := decodeToolInput(r, &input); err != nil {
			writeToolError(w, r, tool, "entrada inválida: "+err.Error())
			return
		}

		if input.CampaignID == "" {
			writeToolError(w, r, tool, "campaign_id é obrigatório")
			return
		}

		if input.Metrics == nil {
			writeToolError(w, r, tool, "metrics é obrigatório")
			return
		}

		metrics := metricsFromInput(input.Metrics)

		logger.WithFields(log.Fields{
			"campaign_id": input.CampaignID,
			"ctr":         metrics.CTR,
			"cpm":         metrics.CPM,
		}).Info("tools: detectando mudanças da campanha")

		events := detector.DetectChanges(input.CampaignID, domain.CampaignMetrics{
			CTR:       metrics.CTR,
			CPM:       metrics.CPM,
			Spend:     metrics.Spend,
			Frequency: metrics.Frequency,
		})

		response := map[string]any{
			"campaign_id": input.CampaignID,
			"events":      events,
		}

		if input.Format == FormatWhatsApp && len(events) > 0 {
			alert := notifying.CampaignAlert{
				CampaignName: campaignDisplayName(input.CampaignName, input.CampaignID),
				Events:       events,
			}

			message, err := formatter.FormatWhatsApp(notifying.KindCampaignAlert, alert)
			if err != nil {
				writeToolError(w, r, tool, err.Error())
				return
			}

			response["message"] = message
		}

		writeToolResult(w, tool, response)
	})
}

// metricsFromInput coage o mapa de métricas da entrada para o snapshot do
// domínio. Chaves desconhecidas são ignoradas.
func metricsFromInput(raw map[string]any) domain.MetricsSnapshot {
	metrics := domain.MetricsSnapshot{
		CTR:       utils.ToFloat(raw["ctr"]),
		CPM:       utils.ToFloat(raw["cpm"]),
		Frequency: utils.ToFloat(raw["frequency"]),
		Spend:     utils.ToFloat(raw["spend"]),
	}

	if _, ok := raw["roas"]; ok {
		roas := utils.ToFloat(raw["roas"])
		metrics.ROAS = &roas
	}

	if _, ok := raw["impressions"]; ok {
		impressions := int(utils.ToFloat(raw["impressions"]))
		metrics.Impressions = &impressions
	}

	if _, ok := raw["clicks"]; ok {
		clicks := int(utils.ToFloat(raw["clicks"]))
		metrics.Clicks = &clicks
	}

	return metrics
}

func campaignDisplayName(name, id string) string {
	if name != "" {
		return name
	}
	return id
}
