package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/campaign-guardian-api/infrastructure/integrator/meta"
	"github.com/vfg2006/campaign-guardian-api/internal/config"
	"github.com/vfg2006/campaign-guardian-api/internal/domain"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/detecting"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/notifying"
)

// CampaignMonitorConfig representa a configuração do monitor de campanhas
type CampaignMonitorConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// CampaignMonitorService percorre periodicamente as campanhas ativas da conta
// configurada, roda o detector e o analisador sobre as métricas do dia e
// registra as notificações resultantes.
type CampaignMonitorService struct {
	scheduler           *gocron.Scheduler
	config              CampaignMonitorConfig
	appConfig           *config.Config
	metaService         meta.Integrator
	detector            detecting.Detector
	analyzer            analyzing.Analyzer
	formatter           notifying.Formatter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewCampaignMonitorService cria uma nova instância do monitor de campanhas
func NewCampaignMonitorService(
	metaService meta.Integrator,
	detector detecting.Detector,
	analyzer analyzing.Analyzer,
	formatter notifying.Formatter,
	appConfig *config.Config,
) *CampaignMonitorService {
	monitorConfig := CampaignMonitorConfig{
		CronSchedule:        appConfig.MonitorSync.CronSchedule,
		RequestDelaySeconds: appConfig.MonitorSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.MonitorSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.MonitorSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         monitorConfig.CronSchedule,
		"request_delay_seconds": monitorConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   monitorConfig.MaxConcurrentJobs,
		"sync_enabled":          monitorConfig.SyncEnabled,
	}).Info("Configuração do monitor de campanhas carregada")

	return &CampaignMonitorService{
		scheduler:   scheduler,
		config:      monitorConfig,
		appConfig:   appConfig,
		metaService: metaService,
		detector:    detector,
		analyzer:    analyzer,
		formatter:   formatter,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *CampaignMonitorService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Monitoramento de campanhas desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do monitor de campanhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.monitorAllCampaigns()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o monitor de campanhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do monitor de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

// monitorAllCampaigns roda uma varredura completa da conta configurada
func (s *CampaignMonitorService) monitorAllCampaigns() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Monitoramento de campanhas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	accountID := s.appConfig.Meta.AccountID
	if accountID == "" {
		logrus.Warn("Nenhuma conta configurada para o monitor de campanhas")
		return
	}

	logrus.WithField("account_id", accountID).Info("Iniciando varredura de campanhas da conta")

	campaigns, err := s.metaService.Campaigns(accountID, []string{string(domain.CampaignStatusActive)})
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar campanhas para o monitor")
		return
	}

	if len(campaigns) == 0 {
		logrus.Info("Nenhuma campanha ativa encontrada para monitorar")
		return
	}

	// Espera entre as duas chamadas remotas para não sobrecarregar a API
	time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)

	insights, err := s.metaService.Insights(accountID, domain.InsightFilters{Level: "campaign"})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar insights para o monitor")
		return
	}

	budgets := make(map[string]float64, len(campaigns))
	names := make(map[string]string, len(campaigns))
	for _, campaign := range campaigns {
		budgets[campaign.ID] = campaign.DailyBudget
		names[campaign.ID] = campaign.Name
	}

	s.processCampaignInsights(insights, budgets, names)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"campaigns": len(campaigns),
		"insights":  len(insights),
	}).Info("Varredura de campanhas concluída")

	s.lastSyncCompletedAt = time.Now()
}

// processCampaignInsights roda detector e analisador por campanha, com
// concorrência limitada por semáforo
func (s *CampaignMonitorService) processCampaignInsights(
	insights []domain.CampaignInsight,
	budgets map[string]float64,
	names map[string]string,
) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, insight := range insights {
		if insight.CampaignID == "" {
			logrus.Warn("Insight sem campaign_id. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(ci domain.CampaignInsight) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.processCampaign(ci, budgets[ci.CampaignID], names[ci.CampaignID])
		}(insight)
	}

	wg.Wait()
}

// processCampaign avalia uma campanha: mudanças em relação à última
// observação e saúde absoluta das métricas
func (s *CampaignMonitorService) processCampaign(insight domain.CampaignInsight, budget float64, name string) {
	if name == "" {
		name = insight.CampaignName
	}

	events := s.detector.DetectChanges(insight.CampaignID, domain.CampaignMetrics{
		CTR:       insight.Metrics.CTR,
		CPM:       insight.Metrics.CPM,
		Spend:     insight.Metrics.Spend,
		Frequency: insight.Metrics.Frequency,
	})

	if len(events) > 0 {
		message, err := s.formatter.FormatWhatsApp(notifying.KindCampaignAlert, notifying.CampaignAlert{
			CampaignName: name,
			Events:       events,
		})
		if err != nil {
			logrus.WithError(err).Error("Erro ao formatar alerta de mudanças da campanha")
		} else {
			logrus.WithFields(logrus.Fields{
				"campaign_id": insight.CampaignID,
				"events":      len(events),
			}).Warn(message)
		}
	}

	var actx *analyzing.AnalysisContext
	if budget > 0 {
		actx = &analyzing.AnalysisContext{CampaignBudget: &budget}
	}

	result := s.analyzer.Analyze(insight.Metrics, actx)

	logger := logrus.WithFields(logrus.Fields{
		"campaign_id":   insight.CampaignID,
		"campaign_name": name,
		"score":         result.Score,
		"status":        result.Status,
	})

	switch result.Status {
	case domain.HealthStatusCritical:
		logger.Error("Campanha em estado crítico")
	case domain.HealthStatusPoor, domain.HealthStatusNeedsImprovement:
		logger.Warn("Campanha abaixo do esperado")
	default:
		logger.Info("Campanha saudável")
	}

	for _, notification := range result.Notifications {
		logrus.WithFields(logrus.Fields{
			"campaign_id":       insight.CampaignID,
			"priority":          notification.Priority,
			"suggested_action":  notification.SuggestedAction,
			"requires_approval": notification.RequiresApproval,
		}).Info(notifying.Glyph(notification.Priority) + " " + notification.Message)
	}
}

// TriggerManualSync inicia manualmente uma varredura de campanhas
func (s *CampaignMonitorService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Monitoramento de campanhas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando varredura manual de campanhas")
	go s.monitorAllCampaigns()
}

// GetStatus retorna o status atual do agendador
func (s *CampaignMonitorService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"account_id":             s.appConfig.Meta.AccountID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
