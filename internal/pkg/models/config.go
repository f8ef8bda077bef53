package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Backend   BackendConfig
	Breaker   BreakerConfig
	Dashboard DashboardConfig
	Map       MapConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout int // in seconds
}

// BackendConfig points at the Trips API
type BackendConfig struct {
	URL            string
	TimeoutSeconds int
	MaxBodyBytes   int64
}

// BreakerConfig tunes the circuit breaker in front of the Trips API
type BreakerConfig struct {
	FailureThreshold uint32
	OpenSeconds      int
}

// DashboardConfig contains controller behaviour switches
type DashboardConfig struct {
	// DiscardStale applies only the response to the most recently issued
	// query. When false the last response to complete wins.
	DiscardStale bool
}

// MapConfig contains defaults for the map widget
type MapConfig struct {
	CenterLat float64
	CenterLng float64
	Zoom      int
	TileURL   string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	Enabled    bool
	AppName    string
	LicenseKey string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
