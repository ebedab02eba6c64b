package app

import "fmt"

// Config holds the flag-level configuration for an App instance. Empty
// string fields mean "not set on the command line"; the settings file and
// built-in defaults fill them in during startup.
type Config struct {
	ConfigPath string // optional HCL settings file

	Order     string
	LogLevel  string
	LogFormat string
}

// NewConfig validates a Config. Fields are only checked when set, since
// unset fields are resolved later against the settings file and defaults.
func NewConfig(cfg Config) (*Config, error) {
	if err := validateEnum("order", cfg.Order, "name", "registration"); err != nil {
		return nil, err
	}
	if err := validateEnum("log-level", cfg.LogLevel, "debug", "info", "warn", "error"); err != nil {
		return nil, err
	}
	if err := validateEnum("log-format", cfg.LogFormat, "text", "json"); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateEnum(name, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s value %q", name, value)
}
