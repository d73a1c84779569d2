package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/campaign-guardian-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-guardian-api/infrastructure/integrator/meta"
	"github.com/vfg2006/campaign-guardian-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-guardian-api/infrastructure/repository"
	"github.com/vfg2006/campaign-guardian-api/infrastructure/statestore"
	"github.com/vfg2006/campaign-guardian-api/internal/api"
	"github.com/vfg2006/campaign-guardian-api/internal/config"
	"github.com/vfg2006/campaign-guardian-api/internal/scheduler"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/approving"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/detecting"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/notifying"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stateRepo := newStateRepository(ctx, cfg)

	metaClient := metaclient.New(cfg.Meta)
	metaClient.StartTokenAutoRefresh()
	defer metaClient.StopTokenAutoRefresh()

	metaService := meta.NewService(metaClient)

	analyzer := analyzing.NewService(cfg)
	detector := detecting.NewService(cfg, stateRepo)
	approver := approving.NewService(cfg, metaService)
	formatter := notifying.NewService()

	campaignMonitorService := scheduler.NewCampaignMonitorService(
		metaService,
		detector,
		analyzer,
		formatter,
		cfg,
	)

	approvalSweepService := scheduler.NewApprovalSweepService(approver, cfg)

	if err := campaignMonitorService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o monitor de campanhas")
	} else {
		logrus.Info("Monitor de campanhas iniciado com sucesso")
	}

	if err := approvalSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a varredura de aprovações")
	} else {
		logrus.Info("Varredura de aprovações iniciada com sucesso")
	}

	server, err := api.New(
		cfg,
		metaService,
		analyzer,
		detector,
		approver,
		formatter,
		campaignMonitorService,
		approvalSweepService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// newStateRepository escolhe o backend do estado de campanhas conforme a
// configuração: arquivo JSON (padrão) ou Postgres.
func newStateRepository(ctx context.Context, cfg *config.Config) repository.CampaignStateRepository {
	if cfg.State.Backend == "postgres" {
		conn := pgconn(ctx, cfg.Database)

		if err := repository.EnsureSchema(conn); err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar o schema do estado de campanhas")
		}

		logrus.Info("Estado de campanhas armazenado no PostgreSQL")
		return repository.NewCampaignStateRepository(conn)
	}

	logrus.WithField("path", cfg.State.FilePath).Info("Estado de campanhas armazenado em arquivo")
	return statestore.NewFileStore(cfg.State.FilePath)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
