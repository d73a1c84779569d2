package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/campaign-guardian-api/internal/config"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/approving"
)

// ApprovalSweepService marca como expiradas as aprovações pendentes vencidas.
// A verificação preguiçosa na resolução continua valendo; a varredura apenas
// antecipa a transição para quem consulta a listagem.
type ApprovalSweepService struct {
	scheduler    *gocron.Scheduler
	cronSchedule string
	enabled      bool
	approver     approving.Approver
	lastSweepAt  time.Time
	lastExpired  int
}

// NewApprovalSweepService cria uma nova instância da varredura de aprovações
func NewApprovalSweepService(approver approving.Approver, appConfig *config.Config) *ApprovalSweepService {
	return &ApprovalSweepService{
		scheduler:    gocron.NewScheduler(time.Local),
		cronSchedule: appConfig.ApprovalSweep.CronSchedule,
		enabled:      appConfig.ApprovalSweep.Enabled,
		approver:     approver,
	}
}

// Start inicia o agendador
func (s *ApprovalSweepService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Varredura de aprovações expiradas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cronSchedule).Info("Iniciando agendador da varredura de aprovações")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.sweep()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a varredura de aprovações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da varredura de aprovações")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ApprovalSweepService) sweep() {
	expired := s.approver.SweepExpired()

	s.lastSweepAt = time.Now()
	s.lastExpired = expired

	if expired > 0 {
		logrus.WithField("expired", expired).Info("Aprovações pendentes marcadas como expiradas")
	}
}

// TriggerManualSync executa a varredura imediatamente
func (s *ApprovalSweepService) TriggerManualSync() {
	logrus.Info("Iniciando varredura manual de aprovações expiradas")
	go s.sweep()
}

// GetStatus retorna o status atual do agendador
func (s *ApprovalSweepService) GetStatus() map[string]any {
	return map[string]any{
		"sweep_enabled": s.enabled,
		"sweep_cron":    s.cronSchedule,
		"last_sweep_at": s.lastSweepAt,
		"last_expired":  s.lastExpired,
	}
}
