package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		AppName  string
		Env      string // DEV (default), TEST, QA, PROD
		Debug    bool
		TestMode bool
		Build    string
		WorkDir  string

		DefaultFromEmail mail.Address
		CurrentUserID    int // the mock session user; there is no login flow

		Server  ServerConfig
		Storage StorageConfig
		Apper   ApperConfig
		Rollbar RollbarConfig
		Mail    MailConfig
	}

	ServerConfig struct {
		Addr            string
		DebugAddr       string
		ShutdownTimeout time.Duration
	}

	// StorageConfig selects the backing store: "memory" (seeded fixtures)
	// or "apper" (hosted remote store).
	StorageConfig struct {
		Backend string
	}

	ApperConfig struct {
		BaseURL   string
		ProjectID string
		APIKey    string
		Timeout   time.Duration
	}

	RollbarConfig struct {
		Token string
	}

	MailConfig struct {
		SendgridAPIKey string
	}
)

// NewConfig loads the app configuration from defaults, an optional
// config/.env.<env> file and environment variables (prefixed with the env name).
func NewConfig() *Config {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)

	// defaults
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "준태스쿨")
	conf.SetDefault("build", "dev")
	conf.SetDefault("defaultFromEmail", "noreply@juntaeschool.local")
	conf.SetDefault("currentUserId", 1)
	conf.SetDefault("serverAddr", ":8000")
	conf.SetDefault("serverDebugAddr", ":8001")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("storageBackend", "memory")
	conf.SetDefault("apperBaseUrl", "")
	conf.SetDefault("apperProjectId", "")
	conf.SetDefault("apperApiKey", "")
	conf.SetDefault("apperTimeout", 30*time.Second)
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("sendgridApiKey", "")

	env := os.Getenv("ENV")
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)

	wd := Getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err = godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		AppName:          conf.GetString("appName"),
		Env:              env,
		Debug:            conf.GetBool("debug"),
		TestMode:         env == "TEST",
		Build:            conf.GetString("build"),
		WorkDir:          wd,
		DefaultFromEmail: mail.Address{Name: conf.GetString("appName"), Address: conf.GetString("defaultFromEmail")},
		CurrentUserID:    conf.GetInt("currentUserId"),
		Server: ServerConfig{
			Addr:            conf.GetString("serverAddr"),
			DebugAddr:       conf.GetString("serverDebugAddr"),
			ShutdownTimeout: conf.GetDuration("serverShutdownTimeout"),
		},
		Storage: StorageConfig{
			Backend: conf.GetString("storageBackend"),
		},
		Apper: ApperConfig{
			BaseURL:   conf.GetString("apperBaseUrl"),
			ProjectID: conf.GetString("apperProjectId"),
			APIKey:    conf.GetString("apperApiKey"),
			Timeout:   conf.GetDuration("apperTimeout"),
		},
		Rollbar: RollbarConfig{Token: conf.GetString("rollbarToken")},
		Mail:    MailConfig{SendgridAPIKey: conf.GetString("sendgridApiKey")},
	}
}
