package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del portal (lectura vía Viper desde env y
// opcionalmente archivo .env).
type Config struct {
	App     AppConfig
	Backend BackendConfig
	Session SessionConfig
}

// AppConfig configuración general.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// BackendConfig ubicación y tiempos del backend Billennium.
// Las rutas de la API cuelgan de BaseURL + /api.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig persistencia local de la sesión (token + usuario cacheado).
type SessionConfig struct {
	File string // ruta del archivo JSON de sesión
}

// Load lee la configuración desde variables de entorno y opcionalmente desde
// un archivo .env en el directorio actual. Las env vars tienen prioridad.
// Nombres esperados: APP_ENV, BACKEND_URL, HTTP_TIMEOUT_SECONDS, SESSION_FILE.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "billennium-portal"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(getString(v, "BACKEND_URL", "http://localhost:8000"), "/"),
			Timeout: time.Duration(getInt(v, "HTTP_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Session: SessionConfig{
			File: getString(v, "SESSION_FILE", ""),
		},
	}

	if cfg.Session.File == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("config: resolver directorio de configuración: %w", err)
		}
		cfg.Session.File = filepath.Join(dir, "billennium", "session.json")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return def
}
