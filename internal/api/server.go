package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/campaign-guardian-api/infrastructure/integrator/meta"
	"github.com/vfg2006/campaign-guardian-api/internal/api/handler"
	"github.com/vfg2006/campaign-guardian-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-guardian-api/internal/config"
	"github.com/vfg2006/campaign-guardian-api/internal/scheduler"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/approving"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/detecting"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/notifying"
	"github.com/vfg2006/campaign-guardian-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	metaService meta.Integrator,
	analyzer analyzing.Analyzer,
	detector detecting.Detector,
	approver approving.Approver,
	formatter notifying.Formatter,
	campaignMonitorService *scheduler.CampaignMonitorService,
	approvalSweepService *scheduler.ApprovalSweepService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		CampaignMonitorService: campaignMonitorService,
		ApprovalSweepService:   approvalSweepService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.AccountTools(metaService, config)...),
		router.WithRoutes(handler.AnalysisTools(analyzer, detector, formatter)...),
		router.WithRoutes(handler.ApprovalTools(approver, formatter)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
