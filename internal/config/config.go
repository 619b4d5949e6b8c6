package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Contoso     Contoso     `mapstructure:",squash"`
	Session     Session     `mapstructure:",squash"`
	Catalog     Catalog     `mapstructure:",squash"`
	AutoRefresh AutoRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

// Contoso é a configuração do colaborador remoto (API de relatórios e loja)
type Contoso struct {
	BaseURL        string `mapstructure:"contoso_base_url"`
	TimeoutSeconds int    `mapstructure:"contoso_timeout_seconds"`
}

// Session indica onde as credenciais persistidas são gravadas entre execuções
type Session struct {
	FilePath string `mapstructure:"session_file_path"`
}

// Catalog controla o cache em memória do catálogo da loja
type Catalog struct {
	CacheTTLSeconds int `mapstructure:"catalog_cache_ttl_seconds"`
}

// AutoRefresh controla a atualização periódica do painel (pull, nunca push)
type AutoRefresh struct {
	CronSchedule string `mapstructure:"auto_refresh_cron"`
	Enabled      bool   `mapstructure:"auto_refresh_enabled"`
}

// Timeout retorna o timeout de transporte das chamadas à API
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Contoso.TimeoutSeconds) * time.Second
}

// CatalogTTL retorna a validade do cache de catálogo
func (c *Config) CatalogTTL() time.Duration {
	return time.Duration(c.Catalog.CacheTTLSeconds) * time.Second
}

func SetDefaults() {
	viper.SetDefault("CONTOSO_BASE_URL", "http://127.0.0.1:8000")
	viper.SetDefault("CONTOSO_TIMEOUT_SECONDS", 30)

	viper.SetDefault("SESSION_FILE_PATH", defaultSessionPath())

	viper.SetDefault("CATALOG_CACHE_TTL_SECONDS", 300) // 5 minutos

	// Atualização automática do painel desabilitada por padrão: o refresh é
	// disparado pelo usuário ou pela troca de recorte de datas
	viper.SetDefault("AUTO_REFRESH_CRON", "*/5 * * * *")
	viper.SetDefault("AUTO_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FILE", "")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

// defaultSessionPath devolve o arquivo de sessão dentro do diretório de
// configuração do usuário, com fallback para o diretório atual
func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".contoso-session.json"
	}
	return filepath.Join(dir, "contoso-dashboard", "session.json")
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
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}
}
