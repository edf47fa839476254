package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vfg2006/market-analyzer-api/internal/domain"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Session  Session  `mapstructure:",squash"`
	Analysis Analysis `mapstructure:",squash"`
	Import   Import   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	AllowedOrigins  []string      `mapstructure:"cors_allowed_origins"`
	ReadTimeout     time.Duration `mapstructure:"server_read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"server_write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"server_shutdown_timeout"`
}

type Session struct {
	TTLMinutes     int    `mapstructure:"session_ttl_minutes"`
	MaxSessions    int    `mapstructure:"session_max"`
	CleanupCron    string `mapstructure:"session_cleanup_cron"`
	CleanupEnabled bool   `mapstructure:"session_cleanup_enabled"`
}

type Analysis struct {
	DefaultTolerance  float64 `mapstructure:"default_tolerance"`
	ConservativeShare float64 `mapstructure:"scenario_conservative"`
	LikelyShare       float64 `mapstructure:"scenario_likely"`
	OptimisticShare   float64 `mapstructure:"scenario_optimistic"`
}

type Import struct {
	HeaderRow   int   `mapstructure:"import_header_row"`
	MaxUploadMB int64 `mapstructure:"import_max_upload_mb"`
}

// TTL retorna o tempo de inatividade após o qual a sessão expira
func (s Session) TTL() time.Duration {
	return time.Duration(s.TTLMinutes) * time.Minute
}

// ShareTargets monta os cenários na ordem conservador, provável e otimista
func (a Analysis) ShareTargets() []domain.ShareTarget {
	return []domain.ShareTarget{
		{Name: "Conservative", Share: a.ConservativeShare},
		{Name: "Likely", Share: a.LikelyShare},
		{Name: "Optimistic", Share: a.OptimisticShare},
	}
}

// MaxUploadBytes limite do corpo multipart da importação
func (i Import) MaxUploadBytes() int64 {
	return i.MaxUploadMB << 20
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("SERVER_READ_TIMEOUT", "15s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "60s") // relatório em PDF pode demorar
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")

	// Sessões em memória
	viper.SetDefault("SESSION_TTL_MINUTES", 120)             // 2 horas sem uso
	viper.SetDefault("SESSION_MAX", 500)                     // Limite de sessões ativas
	viper.SetDefault("SESSION_CLEANUP_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("SESSION_CLEANUP_ENABLED", true)        // Habilitar limpeza de sessões

	// Parâmetros da análise
	viper.SetDefault("DEFAULT_TOLERANCE", domain.DefaultTolerance)
	viper.SetDefault("SCENARIO_CONSERVATIVE", 0.002)
	viper.SetDefault("SCENARIO_LIKELY", 0.005)
	viper.SetDefault("SCENARIO_OPTIMISTIC", 0.01)

	viper.SetDefault("IMPORT_HEADER_ROW", 3)
	viper.SetDefault("IMPORT_MAX_UPLOAD_MB", 10)

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

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
