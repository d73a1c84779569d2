package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Meta          Meta          `mapstructure:",squash"`
	State         State         `mapstructure:",squash"`
	Analysis      Analysis      `mapstructure:",squash"`
	Detection     Detection     `mapstructure:",squash"`
	Approval      Approval      `mapstructure:",squash"`
	MonitorSync   MonitorSync   `mapstructure:",squash"`
	ApprovalSweep ApprovalSweep `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL        string `mapstructure:"meta_base_url"`
	URL            string `mapstructure:"meta_url"`
	Version        string `mapstructure:"meta_version"`
	AccessToken    string `mapstructure:"meta_access_token"`
	AppID          string `mapstructure:"meta_app_id"`
	AppSecret      string `mapstructure:"meta_app_secret"`
	AccountID      string `mapstructure:"meta_account_id"`
	LongLivedToken string `mapstructure:"meta_long_lived_token"`
}

// State define o backend de persistência do estado de campanhas.
type State struct {
	Backend  string `mapstructure:"state_backend"` // file ou postgres
	FilePath string `mapstructure:"state_file_path"`
}

// Analysis agrupa os limiares do analisador de métricas. Todos os valores do
// algoritmo de pontuação são parametrizados aqui; nenhum limiar fica embutido
// no código do analisador.
type Analysis struct {
	CTRCritical       float64 `mapstructure:"analysis_ctr_critical"`
	CTRAverage        float64 `mapstructure:"analysis_ctr_average"`
	CTRGood           float64 `mapstructure:"analysis_ctr_good"`
	CPMCritical       float64 `mapstructure:"analysis_cpm_critical"`
	CPMAverage        float64 `mapstructure:"analysis_cpm_average"`
	FrequencyCritical float64 `mapstructure:"analysis_frequency_critical"`
	FrequencyWarning  float64 `mapstructure:"analysis_frequency_warning"`
	ROASPoor          float64 `mapstructure:"analysis_roas_poor"`
	ROASGood          float64 `mapstructure:"analysis_roas_good"`
	SpendAlert        float64 `mapstructure:"analysis_spend_alert"`
	BudgetCap         float64 `mapstructure:"analysis_budget_cap"`
}

// Detection agrupa os limiares do detector de mudanças período a período.
type Detection struct {
	CTRCrashPct float64 `mapstructure:"detection_ctr_crash_pct"`
	CPMSpikePct float64 `mapstructure:"detection_cpm_spike_pct"`
	CTRBoostPct float64 `mapstructure:"detection_ctr_boost_pct"`
}

// Approval configura a janela de expiração das aprovações pendentes.
type Approval struct {
	ExpiryHours int `mapstructure:"approval_expiry_hours"`
}

type MonitorSync struct {
	CronSchedule        string `mapstructure:"monitor_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"monitor_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"monitor_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"monitor_sync_enabled"`
}

type ApprovalSweep struct {
	CronSchedule string `mapstructure:"approval_sweep_cron"`
	Enabled      bool   `mapstructure:"approval_sweep_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/guardian")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_URL", "https://graph.facebook.com/v22.0")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_ACCOUNT_ID", "")

	viper.SetDefault("STATE_BACKEND", "file")
	viper.SetDefault("STATE_FILE_PATH", "campaign_state.json")

	// Limiares do analisador de métricas
	viper.SetDefault("ANALYSIS_CTR_CRITICAL", 0.5) // CTR abaixo disso é crítico
	viper.SetDefault("ANALYSIS_CTR_AVERAGE", 0.8)  // CTR abaixo disso precisa melhorar
	viper.SetDefault("ANALYSIS_CTR_GOOD", 1.5)     // CTR acima disso é excelente
	viper.SetDefault("ANALYSIS_CPM_CRITICAL", 75.0)
	viper.SetDefault("ANALYSIS_CPM_AVERAGE", 50.0)
	viper.SetDefault("ANALYSIS_FREQUENCY_CRITICAL", 7.0)
	viper.SetDefault("ANALYSIS_FREQUENCY_WARNING", 5.0)
	viper.SetDefault("ANALYSIS_ROAS_POOR", 1.5)
	viper.SetDefault("ANALYSIS_ROAS_GOOD", 3.0)
	viper.SetDefault("ANALYSIS_SPEND_ALERT", 50.0) // gasto mínimo para sugerir pausa
	viper.SetDefault("ANALYSIS_BUDGET_CAP", 200.0) // teto da sugestão de novo orçamento

	// Limiares do detector de mudanças (variação percentual entre observações)
	viper.SetDefault("DETECTION_CTR_CRASH_PCT", -30.0)
	viper.SetDefault("DETECTION_CPM_SPIKE_PCT", 50.0)
	viper.SetDefault("DETECTION_CTR_BOOST_PCT", 50.0)

	viper.SetDefault("APPROVAL_EXPIRY_HOURS", 2)

	// Defaults do monitor de campanhas
	viper.SetDefault("MONITOR_SYNC_CRON", "*/30 * * * *")     // A cada 30 minutos
	viper.SetDefault("MONITOR_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("MONITOR_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("MONITOR_SYNC_ENABLED", false)           // Habilitar monitoramento

	// Defaults da varredura de aprovações expiradas
	viper.SetDefault("APPROVAL_SWEEP_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("APPROVAL_SWEEP_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
