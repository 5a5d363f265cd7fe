package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const EnvPrefix = "FINANCEFLOW"

// Keys understood by viper. Environment variables use the prefix, e.g.
// FINANCEFLOW_EXCHANGE_RATE.
const (
	KeyConfigFile      = "config"
	KeyPort            = "port"
	KeyLogLevel        = "log_level"
	KeySeedMockData    = "seed_mock_data"
	KeyInitialBalance  = "initial_balance"
	KeyExchangeRate    = "exchange_rate"
	KeyOperatorWorkers = "operator_workers"
	KeyQueueSize       = "queue_size"
	KeyLocale          = "locale"
)

type Config struct {
	Port            string
	LogLevel        logrus.Level
	SeedMockData    bool
	InitialBalance  decimal.Decimal
	ExchangeRate    decimal.Decimal
	OperatorWorkers int
	QueueSize       int
	Locale          string
}

// ProcessEnvironmentVariables loads .env, then reads the process environment
// and an optional config file on top of the defaults.
func ProcessEnvironmentVariables(v *viper.Viper) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()
	return Load(v)
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, "9446")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeySeedMockData, true)
	v.SetDefault(KeyInitialBalance, "1000")
	v.SetDefault(KeyExchangeRate, "5.80")
	v.SetDefault(KeyOperatorWorkers, 1)
	v.SetDefault(KeyQueueSize, 1000)
	v.SetDefault(KeyLocale, "pt-BR")
}

// Load builds a Config from v. Flags bound to v by the caller take
// precedence over the environment.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if cfgFile := v.GetString(KeyConfigFile); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", cfgFile, err)
		}
	}

	var problems []string

	level, err := logrus.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", v.GetString(KeyLogLevel)))
	}
	initialBalance, err := decimal.NewFromString(v.GetString(KeyInitialBalance))
	if err != nil {
		problems = append(problems, fmt.Sprintf("invalid initial balance '%s': must be a number", v.GetString(KeyInitialBalance)))
	}
	exchangeRate, err := decimal.NewFromString(v.GetString(KeyExchangeRate))
	if err != nil {
		problems = append(problems, fmt.Sprintf("invalid exchange rate '%s': must be a number", v.GetString(KeyExchangeRate)))
	}

	env := Config{
		Port:            v.GetString(KeyPort),
		LogLevel:        level,
		SeedMockData:    v.GetBool(KeySeedMockData),
		InitialBalance:  initialBalance,
		ExchangeRate:    exchangeRate,
		OperatorWorkers: v.GetInt(KeyOperatorWorkers),
		QueueSize:       v.GetInt(KeyQueueSize),
		Locale:          v.GetString(KeyLocale),
	}

	if err := env.validate(problems); err != nil {
		return nil, err
	}
	return &env, nil
}

func (c *Config) validate(problems []string) error {
	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if !c.ExchangeRate.IsPositive() {
		problems = append(problems, fmt.Sprintf("invalid exchange rate %s: must be greater than zero", c.ExchangeRate))
	}

	if c.OperatorWorkers < 1 {
		problems = append(problems, fmt.Sprintf("invalid operator workers %d: must be at least 1", c.OperatorWorkers))
	}

	if c.QueueSize < 1 {
		problems = append(problems, fmt.Sprintf("invalid queue size %d: must be at least 1", c.QueueSize))
	}

	if c.Locale == "" {
		problems = append(problems, "locale cannot be empty")
	}

	if len(problems) > 0 {
		return errors.New("configuration validation failed:\n- " + strings.Join(problems, "\n- "))
	}
	return nil
}
