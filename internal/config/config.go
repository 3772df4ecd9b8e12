package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret        string `yaml:"secret"`
		TTL           int    `yaml:"ttl"`             // access token lifetime, minutes
		RefreshTTLDay int    `yaml:"refresh_ttl_day"` // refresh token lifetime, days
	} `yaml:"jwt"`

	Storage struct {
		Type     string `yaml:"type"`      // local
		BasePath string `yaml:"base_path"` // for local storage
		BaseURL  string `yaml:"base_url"`  // public URL base
	} `yaml:"storage"`

	Upload struct {
		MaxImageSize  int64 `yaml:"max_image_size"`  // bytes, profile images
		MaxResumeSize int64 `yaml:"max_resume_size"` // bytes, resumes
	} `yaml:"upload"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Admin struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"admin"`

	RateLimit struct {
		AuthPerMinute int `yaml:"auth_per_minute"` // per-IP ceiling on auth endpoints
		AuthBurst     int `yaml:"auth_burst"`
	} `yaml:"rate_limit"`
}

var AppConfig *Config

// LoadConfig reads config/config.yaml unless DATABASE_URL is set, in which
// case the environment alone drives the config (test and container runs).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file: %v", err)
		}
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	AppConfig = &cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		cfg.Admin.Email = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.JWT.RefreshTTLDay == 0 {
		cfg.JWT.RefreshTTLDay = 30
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "local"
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "uploads"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/uploads"
	}
	if cfg.Upload.MaxImageSize == 0 {
		cfg.Upload.MaxImageSize = 3 << 20 // 3MB
	}
	if cfg.Upload.MaxResumeSize == 0 {
		cfg.Upload.MaxResumeSize = 5 << 20 // 5MB
	}
	if cfg.RateLimit.AuthPerMinute == 0 {
		cfg.RateLimit.AuthPerMinute = 20
	}
	if cfg.RateLimit.AuthBurst == 0 {
		cfg.RateLimit.AuthBurst = 10
	}
}
