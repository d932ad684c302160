package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "DAYPLAN"
	appDirName = ".dayplan"
)

// Backends accepted by --store.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Keys shared by flags, env vars and viper.
const (
	KeyDataDir  = "data-dir"
	KeyStore    = "store"
	KeyTheme    = "theme"
	KeyLogLevel = "log-level"
	KeyNoColor  = "no-color"
	KeyAddr     = "addr"
)

type Config struct {
	DataDir  string
	Backend  string
	Theme    string
	LogLevel string
	NoColor  bool
	Addr     string
}

// New returns a viper instance with defaults and DAYPLAN_* env binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyStore, BackendJSON)
	v.SetDefault(KeyTheme, "classic")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyAddr, "127.0.0.1:8080")
	return v
}

// BindFlags lets flags that were set on the command line win over env.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil {
			return
		}
		switch f.Name {
		case KeyDataDir, KeyStore, KeyTheme, KeyLogLevel, KeyNoColor, KeyAddr:
			if err := v.BindPFlag(f.Name, f); err != nil {
				bindErr = fmt.Errorf("bind flag %s: %w", f.Name, err)
			}
		}
	})
	return bindErr
}

// Load resolves the final config. An empty data dir falls back to
// ~/.dayplan, created 0700.
func Load(v *viper.Viper) (Config, error) {
	c := Config{
		DataDir:  strings.TrimSpace(v.GetString(KeyDataDir)),
		Backend:  strings.ToLower(strings.TrimSpace(v.GetString(KeyStore))),
		Theme:    v.GetString(KeyTheme),
		LogLevel: v.GetString(KeyLogLevel),
		NoColor:  v.GetBool(KeyNoColor),
		Addr:     v.GetString(KeyAddr),
	}
	switch c.Backend {
	case BackendJSON, BackendSQLite, BackendMemory:
	default:
		return Config{}, fmt.Errorf("unknown store %q (want json|sqlite|memory)", c.Backend)
	}
	if c.Backend == BackendMemory {
		return c, nil
	}
	if c.DataDir == "" {
		dir, err := defaultDataDir()
		if err != nil {
			return Config{}, err
		}
		c.DataDir = dir
	}
	if err := os.MkdirAll(c.DataDir, 0o700); err != nil {
		return Config{}, fmt.Errorf("mkdir: %w", err)
	}
	return c, nil
}

func defaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, appDirName), nil
}

// SQLitePath is where the sqlite backend keeps its database.
func (c Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "dayplan.db")
}
