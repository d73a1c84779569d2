package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-guardian-api/infrastructure/integrator/meta"
	"github.com/vfg2006/campaign-guardian-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-guardian-api/internal/config"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/approving"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/detecting"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/notifying"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// AccountTools expõe as ferramentas de leitura da conta de anúncios.
func AccountTools(service meta.Integrator, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/tools/get_account_info",
			Method:  http.MethodPost,
			Handler: GetAccountInfo(service, cfg),
		},
		{
			Path:    "/v1/tools/get_insights",
			Method:  http.MethodPost,
			Handler: GetInsights(service, cfg),
		},
		{
			Path:    "/v1/tools/get_campaigns",
			Method:  http.MethodPost,
			Handler: GetCampaigns(service, cfg),
		},
		{
			Path:    "/v1/tools/get_adsets",
			Method:  http.MethodPost,
			Handler: GetAdSets(service),
		},
		{
			Path:    "/v1/tools/get_ads",
			Method:  http.MethodPost,
			Handler: GetAds(service),
		},
	}
}

// AnalysisTools expõe o analisador de métricas e o detector de mudanças.
func AnalysisTools(
	analyzer analyzing.Analyzer,
	detector detecting.Detector,
	formatter notifying.Formatter,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/tools/analyze_campaign_health",
			Method:  http.MethodPost,
			Handler: AnalyzeCampaignHealth(analyzer, detector, formatter),
		},
		{
			Path:    "/v1/tools/detect_campaign_changes",
			Method:  http.MethodPost,
			Handler: DetectCampaignChanges(detector, formatter),
		},
	}
}

// ApprovalTools expõe o fluxo de aprovação de ações destrutivas.
func ApprovalTools(approver approving.Approver, formatter notifying.Formatter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/tools/pause_campaigns",
			Method:  http.MethodPost,
			Handler: PauseCampaigns(approver, formatter),
		},
		{
			Path:    "/v1/tools/resolve_approval",
			Method:  http.MethodPost,
			Handler: ResolveApproval(approver, formatter),
		},
		{
			Path:    "/v1/tools/list_approvals",
			Method:  http.MethodPost,
			Handler: ListApprovals(approver),
		},
	}
}

// CronJobs expõe o disparo manual e o status dos agendadores.
func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/run/:type",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
