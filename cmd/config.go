package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/Rhymond/go-money"
	"gopkg.in/yaml.v3"
)

// Environment variables read by the application, and passed to extensions.
const (
	EnvConfigFile = "FIN_CONFIG"
	EnvLedgerFile = "FIN_LEDGER_FILE"
	EnvCurrency   = "FIN_CURRENCY"
	EnvVerbose    = "FIN_VERBOSE"
)

// Config is the content of the YAML configuration file.
type Config struct {
	LedgerFile string `yaml:"ledger_file"`
	Currency   string `yaml:"currency"`
	Verbose    *bool  `yaml:"verbose"`
	Plain      *bool  `yaml:"plain"`
}

// DecodeConfig reads a configuration file. Unknown keys are rejected.
func DecodeConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid configuration file %q: %w", path, err)
	}
	return &cfg, nil
}

// LoadConfig resolves the global flags that were not explicitly set on the
// command line flags, from the environment first, then from the configuration file.
//
// The configuration file is optional unless it was explicitly named with -config
// or FIN_CONFIG.
func LoadConfig(flags *flag.FlagSet) error {
	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	path, required := *configFile, set["config"]
	if v, ok := os.LookupEnv(EnvConfigFile); ok && !set["config"] {
		path, required = v, true
	}

	cfg, err := DecodeConfig(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !required:
		cfg = &Config{}
	case err != nil:
		return fmt.Errorf("could not load configuration: %w", err)
	default:
		log.Printf("loaded configuration from %q", path)
	}

	if !set["ledger-file"] {
		if v, ok := os.LookupEnv(EnvLedgerFile); ok {
			*ledgerFile = v
		} else if cfg.LedgerFile != "" {
			*ledgerFile = cfg.LedgerFile
		}
	}
	if !set["currency"] {
		if v, ok := os.LookupEnv(EnvCurrency); ok {
			*currency = v
		} else if cfg.Currency != "" {
			*currency = cfg.Currency
		}
	}
	if !set["v"] {
		if v, ok := os.LookupEnv(EnvVerbose); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid %s value %q: %w", EnvVerbose, v, err)
			}
			*Verbose = b
		} else if cfg.Verbose != nil {
			*Verbose = *cfg.Verbose
		}
	}
	if !set["plain"] && cfg.Plain != nil {
		*plain = *cfg.Plain
	}

	if *currency != "" && money.GetCurrency(*currency) == nil {
		return fmt.Errorf("unknown currency %q", *currency)
	}
	return nil
}
