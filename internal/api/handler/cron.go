package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/campaign-guardian-api/internal/scheduler"
	"github.com/vfg2006/campaign-guardian-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMonitor = "monitor"
	CronJobTypeSweep   = "approval-sweep"
	CronJobTypeAll     = "all"
)

// CronJobServices contém os agendadores que podem ser disparados manualmente
type CronJobServices struct {
	CampaignMonitorService *scheduler.CampaignMonitorService
	ApprovalSweepService   *scheduler.ApprovalSweepService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeMonitor:
			if services.CampaignMonitorService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Monitor de campanhas não disponível", nil)
				return
			}
			services.CampaignMonitorService.TriggerManualSync()

		case CronJobTypeSweep:
			if services.ApprovalSweepService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Varredura de aprovações não disponível", nil)
				return
			}
			services.ApprovalSweepService.TriggerManualSync()

		case CronJobTypeAll:
			if services.CampaignMonitorService != nil {
				services.CampaignMonitorService.TriggerManualSync()
			}
			if services.ApprovalSweepService != nil {
				services.ApprovalSweepService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: monitor, approval-sweep, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Error("Erro ao serializar resposta de cron job")
		}
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"monitor":        services.CampaignMonitorService.GetStatus(),
			"approval-sweep": services.ApprovalSweepService.GetStatus(),
		}

		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("Erro ao serializar status de cron jobs")
		}
	}
}
