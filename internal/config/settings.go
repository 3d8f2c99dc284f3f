package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. STEPLINE_FLAVOR.
const EnvPrefix = "STEPLINE"

// Settings are the user preferences read from the settings file, the
// environment and command flags. They apply to every definition.
type Settings struct {
	Flavor          string        `mapstructure:"flavor"`
	MarkdownStyle   string        `mapstructure:"markdown_style"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFile         string        `mapstructure:"log_file"`
	SpringFrequency float64       `mapstructure:"spring_frequency"`
	SpringDamping   float64       `mapstructure:"spring_damping"`
	Debounce        time.Duration `mapstructure:"debounce"`
	Width           int           `mapstructure:"width"`
}

// singleton holds the settings resolved at startup.
var (
	globalSettings *Settings
	mu             sync.RWMutex
)

// SetDefaults registers the default value of every setting on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("flavor", "")
	v.SetDefault("markdown_style", "auto")
	v.SetDefault("log_level", "")
	v.SetDefault("log_file", "stepline.log")
	v.SetDefault("spring_frequency", 6.0)
	v.SetDefault("spring_damping", 0.8)
	v.SetDefault("debounce", 100*time.Millisecond)
	v.SetDefault("width", 0)
}

// BindEnv makes every setting overridable through STEPLINE_* variables.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// LoadSettings decodes the settings from v and caches them for Get.
func LoadSettings(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	if s.SpringFrequency <= 0 {
		return nil, fmt.Errorf("spring_frequency must be > 0, got %g", s.SpringFrequency)
	}
	if s.SpringDamping < 0 {
		return nil, fmt.Errorf("spring_damping must be >= 0, got %g", s.SpringDamping)
	}

	mu.Lock()
	globalSettings = &s
	mu.Unlock()

	return &s, nil
}

// Get returns the cached settings, or the defaults if LoadSettings has not
// been called.
func Get() *Settings {
	mu.RLock()
	s := globalSettings
	mu.RUnlock()
	if s != nil {
		return s
	}

	v := viper.New()
	SetDefaults(v)
	var d Settings
	_ = v.Unmarshal(&d)
	return &d
}
