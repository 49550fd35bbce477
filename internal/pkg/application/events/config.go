package events

import (
	"io"
	"time"

	yaml "gopkg.in/yaml.v2"
)

type CausalRule struct {
	CauseType   string `yaml:"causeType"`
	CauseState  string `yaml:"causeState"`
	EffectType  string `yaml:"effectType"`
	EffectState string `yaml:"effectState"`
	SameDevice  bool   `yaml:"sameDevice"`
}

type Config struct {
	CorrelationWindowMinutes int          `yaml:"correlationWindowMinutes"`
	EventTypeCap             int          `yaml:"eventTypeCap"`
	CausalRules              []CausalRule `yaml:"causalRules"`
}

func (c Config) CorrelationWindow() time.Duration {
	if c.CorrelationWindowMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.CorrelationWindowMinutes) * time.Minute
}

func (c Config) TypeCap() int {
	if c.EventTypeCap <= 0 {
		return 10
	}
	return c.EventTypeCap
}

// DefaultConfig carries the causal rules the correlation engine falls back
// on when no configuration file is provided. A device going down takes down
// its interfaces, and a downed interface takes down the services riding it.
func DefaultConfig() *Config {
	return &Config{
		CausalRules: []CausalRule{
			{
				CauseType:   "device_state_change",
				CauseState:  "down",
				EffectType:  "interface_state_change",
				EffectState: "down",
				SameDevice:  true,
			},
			{
				CauseType:   "interface_state_change",
				CauseState:  "down",
				EffectType:  "service_state_change",
				EffectState: "down",
			},
		},
	}
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := Config{}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, err
	}

	if len(cfg.CausalRules) == 0 {
		cfg.CausalRules = DefaultConfig().CausalRules
	}

	return &cfg, nil
}
