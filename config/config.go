package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries everything the service reads from the environment or the
// optional configs/config.yaml file. Env vars win over the yaml file.
type Config struct {
	Port        string `yaml:"port"`
	DatabaseURL string `yaml:"database_url"`
	JWTSecret   string `yaml:"jwt_secret"`

	AdminEmail    string `yaml:"admin_email"`
	AdminPassword string `yaml:"admin_password"`

	SMTPHost string `yaml:"smtp_host"`
	SMTPPort string `yaml:"smtp_port"`
	SMTPUser string `yaml:"smtp_user"`
	SMTPPass string `yaml:"smtp_password"`

	TelegramToken   string  `yaml:"telegram_token"`
	TelegramChatIDs []int64 `yaml:"telegram_chat_ids"`

	PushServiceURL string `yaml:"push_service_url"`
	PushAPIKey     string `yaml:"push_api_key"`
	PushTopic      string `yaml:"push_topic"`
}

// Load reads .env, the optional yaml file, then env overrides. Missing
// database or JWT settings are fatal; missing notification settings only
// disable the affected channel.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("config: error parsing config.yaml: %v", err)
		}
	}

	applyEnv(cfg)

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.PushTopic == "" {
		cfg.PushTopic = "digicraft"
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("config: DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("config: JWT_SECRET is required")
	}
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Fatal("config: ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}

	return cfg
}

func applyEnv(cfg *Config) {
	setIfPresent := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setIfPresent(&cfg.Port, "PORT")
	setIfPresent(&cfg.DatabaseURL, "DATABASE_URL")
	setIfPresent(&cfg.JWTSecret, "JWT_SECRET")
	setIfPresent(&cfg.AdminEmail, "ADMIN_EMAIL")
	setIfPresent(&cfg.AdminPassword, "ADMIN_PASSWORD")
	setIfPresent(&cfg.SMTPHost, "SMTP_HOST")
	setIfPresent(&cfg.SMTPPort, "SMTP_PORT")
	setIfPresent(&cfg.SMTPUser, "SMTP_USER")
	setIfPresent(&cfg.SMTPPass, "SMTP_PASSWORD")
	setIfPresent(&cfg.TelegramToken, "TELEGRAM_BOT_TOKEN")
	setIfPresent(&cfg.PushServiceURL, "PUSH_SERVICE_URL")
	setIfPresent(&cfg.PushAPIKey, "PUSH_API_KEY")
	setIfPresent(&cfg.PushTopic, "PUSH_TOPIC")

	if raw := os.Getenv("TELEGRAM_CHAT_IDS"); raw != "" {
		ids, err := ParseChatIDs(raw)
		if err != nil {
			log.Fatalf("config: invalid TELEGRAM_CHAT_IDS: %v", err)
		}
		cfg.TelegramChatIDs = ids
	}
}

// ParseChatIDs parses a comma-separated list of Telegram chat ids.
func ParseChatIDs(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
