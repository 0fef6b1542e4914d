package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"taxcalc/internal/logging"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home         string // config and history directory, e.g. $HOME/.taxcalc
	BracketsFile string // optional YAML with extra or replacement bracket tables
	History      bool   // record every calculation
	Passphrase   string // encrypts the history file when set
	LogLevel     string // zap level name for diagnostics on stderr
	Addr         string // listen address for the HTTP API
}

// Config keys, shared by flags, TAXCALC_* environment variables and
// config.yaml in the home directory.
const (
	KeyHome       = "home"
	KeyBrackets   = "brackets"
	KeyHistory    = "history"
	KeyPassphrase = "passphrase"
	KeyLogLevel   = "log-level"
	KeyAddr       = "addr"
)

const (
	envPrefix      = "TAXCALC"
	configName     = "config"
	defaultDirName = ".taxcalc"
	defaultAddr    = ":8080"
)

// LoadConfig resolves Config from flags, then environment, then
// <home>/config.yaml, then defaults. Flags that were not set on the command
// line do not override the other sources.
func LoadConfig(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// A flag's own default wins over these when the flag set defines it.
	if flags == nil || flags.Lookup(KeyLogLevel) == nil {
		v.SetDefault(KeyLogLevel, logging.DefaultLevel)
	}
	if flags == nil || flags.Lookup(KeyAddr) == nil {
		v.SetDefault(KeyAddr, defaultAddr)
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, err
		}
	}

	home := v.GetString(KeyHome)
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		home = filepath.Join(dir, defaultDirName)
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(home)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	return Config{
		Home:         home,
		BracketsFile: v.GetString(KeyBrackets),
		History:      v.GetBool(KeyHistory),
		Passphrase:   v.GetString(KeyPassphrase),
		LogLevel:     v.GetString(KeyLogLevel),
		Addr:         v.GetString(KeyAddr),
	}, nil
}
