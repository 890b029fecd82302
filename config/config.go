package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	Parallel              bool
	RateLimit             RateLimitConfig
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once, falling back to defaults when
// the file is absent.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := Load("")
		if err != nil {
			log.Fatalln(err)
		}
		config = cfg
	})

	return config
}

// Load reads the configuration from path, or from config.yaml in the working
// directory when path is empty. Environment variables prefixed with SCHEDSIM_
// override file values, e.g. SCHEDSIM_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.parallel", true)
	v.SetDefault("rate_limit.requests_per_second", 20)
	v.SetDefault("rate_limit.burst", 40)

	v.SetEnvPrefix("SCHEDSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &SchedulerConfig{}
	cfg.Port = v.GetInt("port")
	cfg.RoundRobinTimeQuantum = v.GetInt("scheduler.round_robin.time_quantum")
	cfg.Parallel = v.GetBool("scheduler.parallel")
	cfg.RateLimit.RequestsPerSecond = v.GetFloat64("rate_limit.requests_per_second")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")

	if cfg.RoundRobinTimeQuantum <= 0 {
		return nil, fmt.Errorf("config: scheduler.round_robin.time_quantum must be positive, got %d", cfg.RoundRobinTimeQuantum)
	}
	if cfg.Port <= 0 {
		return nil, fmt.Errorf("config: port must be positive, got %d", cfg.Port)
	}
	return cfg, nil
}
