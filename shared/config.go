package shared

import (
	"encoding/json"
	"log"
	"os"

	"github.com/tailscale/hujson"
)

const (
	configVarName  = "CONFIG"                  // If set, will load config.json from this path and not from devConfigPath
	secretsVarName = "SECRETS"                 // If set, will load secrets.json from this path and not from devSecretsPath
	devConfigPath  = "./dev/config.dev.jsonc"  // Path to config.json in development environment
	devSecretsPath = "./dev/secrets.dev.jsonc" // Path to secrets.json in development environment
)

type Config struct {
	Secrets           Secrets  `json:"-"`
	LogFile           string   `json:"log_file"`
	LogLevel          string   `json:"log_level"`
	ServicePort       uint     `json:"service_port"`
	DbFile            string   `json:"db_file"`
	GatewayUrl        string   `json:"gateway_url"`
	Timezone          string   `json:"timezone"`
	PollIntervalSec   int      `json:"poll_interval_sec"`
	TimelinePageSize  int      `json:"timeline_page_size"`
	SearchMaxResults  int      `json:"search_max_results"`
	FullRescan        bool     `json:"full_rescan"`
	CooldownBaseSec   int      `json:"cooldown_base_sec"`
	CooldownMaxSec    int      `json:"cooldown_max_sec"`
	AiBaseUrl         string   `json:"ai_base_url"`
	AiModel           string   `json:"ai_model"`
	EnrichTimeoutSec  int      `json:"enrich_timeout_sec"`
	EnrichWorkers     int      `json:"enrich_workers"`
	ReconcileGraceMin int      `json:"reconcile_grace_min"`
	RetentionHours    int      `json:"retention_hours"`
	UrgencyThreshold  int      `json:"urgency_threshold"`
	AlertCategories   []string `json:"alert_categories"`
	DispatchRetries   int      `json:"dispatch_retries"`
	SeedAccounts      []string `json:"seed_accounts"`
}

type Secrets struct {
	GatewayUser     string   `json:"gateway_user"`
	GatewayPassword string   `json:"gateway_password"`
	AiApiKey        string   `json:"ai_api_key"`
	TelegramToken   string   `json:"telegram_bot_token"`
	TelegramChatIds []int64  `json:"telegram_chat_ids"`
	ApiKeys         []string `json:"api_keys"`
	MetricsAuth     string   `json:"metrics_auth"`
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)
	return &config
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
