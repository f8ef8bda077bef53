package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/piresc/tripdash/internal/pkg/models"
	"github.com/spf13/viper"
)

// DefaultBackendURL is used when BACKEND_URL is not set
const DefaultBackendURL = "http://localhost:5000"

// InitConfig loads configuration from the environment. In the local
// environment a dotenv file at configPath is loaded first.
func InitConfig(configPath string) *models.Config {
	v := newViper()
	if v.GetString("APP_ENV") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "tripdash")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "development")

	v.SetDefault("SERVER_HOST", "")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("BACKEND_URL", DefaultBackendURL)
	v.SetDefault("BACKEND_TIMEOUT_SECONDS", 10)
	v.SetDefault("BACKEND_MAX_BODY_BYTES", 32<<20)

	v.SetDefault("BREAKER_FAILURE_THRESHOLD", 5)
	v.SetDefault("BREAKER_OPEN_SECONDS", 30)

	v.SetDefault("DASHBOARD_DISCARD_STALE", true)

	// New York City
	v.SetDefault("MAP_CENTER_LAT", 40.7128)
	v.SetDefault("MAP_CENTER_LNG", -74.006)
	v.SetDefault("MAP_ZOOM", 12)
	v.SetDefault("MAP_TILE_URL", "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png")

	v.SetDefault("NEW_RELIC_ENABLED", false)
	v.SetDefault("NEW_RELIC_APP_NAME", "tripdash")
	v.SetDefault("NEW_RELIC_LICENSE_KEY", "")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Trips API
	configs.Backend.URL = strings.TrimRight(v.GetString("BACKEND_URL"), "/")
	if configs.Backend.URL == "" {
		configs.Backend.URL = DefaultBackendURL
	}
	configs.Backend.TimeoutSeconds = v.GetInt("BACKEND_TIMEOUT_SECONDS")
	configs.Backend.MaxBodyBytes = v.GetInt64("BACKEND_MAX_BODY_BYTES")

	// Circuit breaker
	configs.Breaker.FailureThreshold = v.GetUint32("BREAKER_FAILURE_THRESHOLD")
	configs.Breaker.OpenSeconds = v.GetInt("BREAKER_OPEN_SECONDS")

	// Dashboard
	configs.Dashboard.DiscardStale = v.GetBool("DASHBOARD_DISCARD_STALE")

	// Map widget
	configs.Map.CenterLat = v.GetFloat64("MAP_CENTER_LAT")
	configs.Map.CenterLng = v.GetFloat64("MAP_CENTER_LNG")
	configs.Map.Zoom = v.GetInt("MAP_ZOOM")
	configs.Map.TileURL = v.GetString("MAP_TILE_URL")

	// NewRelic config
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}
