// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	App struct {
		// DocumentName is the key of the single diary document row.
		DocumentName      string `mapstructure:"document_name"`
		AdviceContextDays int    `mapstructure:"advice_context_days"`
		AdviceMinRecords  int    `mapstructure:"advice_min_records"`
	} `mapstructure:"app"`
	Advisor struct {
		Type           string  `mapstructure:"type"` // "groq" or "log"
		APIKey         string  `mapstructure:"api_key"`
		Model          string  `mapstructure:"model"`
		BaseURL        string  `mapstructure:"base_url"`
		TimeoutSeconds int     `mapstructure:"timeout_seconds"`
		Temperature    float64 `mapstructure:"temperature"`
	} `mapstructure:"advisor"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	// Secrets come from the environment, never from the yaml file.
	viper.BindEnv("advisor.api_key", "GROQ_API_KEY")
	viper.BindEnv("database.url", "DATABASE_URL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- Defaults ---
	if Cfg.Server.Port == "" {
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.App.DocumentName == "" {
		Cfg.App.DocumentName = DefaultDocumentName
	}
	if Cfg.App.AdviceContextDays <= 0 {
		Cfg.App.AdviceContextDays = DefaultAdviceContextDays
	}
	if Cfg.App.AdviceMinRecords <= 0 {
		Cfg.App.AdviceMinRecords = DefaultAdviceMinRecords
	}
	if Cfg.Advisor.Type == "" {
		Cfg.Advisor.Type = "log"
	}
	if Cfg.Advisor.Model == "" {
		Cfg.Advisor.Model = DefaultAdvisorModel
	}
	if Cfg.Advisor.BaseURL == "" {
		Cfg.Advisor.BaseURL = DefaultAdvisorBaseURL
	}
	if Cfg.Advisor.TimeoutSeconds <= 0 {
		Cfg.Advisor.TimeoutSeconds = DefaultAdvisorTimeoutSecs
	}
	if Cfg.Advisor.Temperature <= 0 {
		Cfg.Advisor.Temperature = 0.7
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Document Name: %s", Cfg.App.DocumentName)
	log.Printf("Advisor Type: %s", Cfg.Advisor.Type)

	return nil
}
