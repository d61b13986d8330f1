package redirect

import (
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultDestination is where a countdown with no override ends up.
	DefaultDestination = "https://www.example.com/club-login"

	// DefaultDelaySeconds is the countdown length when none is configured.
	DefaultDelaySeconds = 3

	// SettleDelay is the pause between committing a redirect and opening
	// the browser, long enough for the redirecting frame to render.
	SettleDelay = 500 * time.Millisecond
)

// Config carries the redirect defaults. It is fixed at startup; commands
// copy it before applying flag overrides.
type Config struct {
	BaseURL      string
	DelaySeconds int
}

// DefaultConfig returns the compiled-in defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:      DefaultDestination,
		DelaySeconds: DefaultDelaySeconds,
	}
}

// LoadConfig resolves the redirect defaults, letting the environment
// override the compiled-in values (DETOUR_DESTINATION, DETOUR_DELAY).
func LoadConfig() Config {
	viper.SetDefault("destination", DefaultDestination)
	viper.SetDefault("delay", DefaultDelaySeconds)
	viper.SetEnvPrefix("DETOUR")
	viper.AutomaticEnv()

	cfg := Config{
		BaseURL:      viper.GetString("destination"),
		DelaySeconds: viper.GetInt("delay"),
	}
	if cfg.DelaySeconds < 0 {
		cfg.DelaySeconds = 0
	}
	return cfg
}
