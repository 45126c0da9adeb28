// Package config loads portquery settings from the environment and an
// optional YAML config file.
package config

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/viper"
)

const envPrefix = "PORTQUERY"

// Installed-package backend selectors accepted in installed_backend.
const (
	BackendPkg    = "pkg"
	BackendSQLite = "sqlite"
)

// Config carries the settings the backend adapters are wired from.
type Config struct {
	PortsDir         string
	MakeBin          string
	PkgBin           string
	PkgDB            string
	PortDBDir        string
	InstalledBackend string
	IncludeMoved     bool
	FieldPolicy      string
}

// Default returns the configuration used when no file and no
// environment overrides are present.
func Default() Config {
	return Config{
		PortsDir:         "/usr/ports",
		MakeBin:          "make",
		PkgBin:           "pkg",
		PkgDB:            "/var/db/pkg/local.sqlite",
		PortDBDir:        "/var/db/ports",
		InstalledBackend: BackendPkg,
		IncludeMoved:     false,
		FieldPolicy:      "silent",
	}
}

// Load reads configuration from the environment and, when present, a
// portquery.yaml file.  An explicit configFile must be readable; the
// search paths are optional.
func Load(configFile string) (Config, error) {
	setDefaults()
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return Config{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return fromViper(), nil
	}

	viper.SetConfigName("portquery")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/portquery")
	if err := viper.ReadInConfig(); err != nil {
		return fromViper(), nil
	}
	return fromViper(), nil
}

func setDefaults() {
	defaults := Default()
	viper.SetDefault("ports_dir", defaults.PortsDir)
	viper.SetDefault("make_bin", defaults.MakeBin)
	viper.SetDefault("pkg_bin", defaults.PkgBin)
	viper.SetDefault("pkg_db", defaults.PkgDB)
	viper.SetDefault("port_dbdir", defaults.PortDBDir)
	viper.SetDefault("installed_backend", defaults.InstalledBackend)
	viper.SetDefault("include_moved", defaults.IncludeMoved)
	viper.SetDefault("field_policy", defaults.FieldPolicy)
}

func fromViper() Config {
	return Config{
		PortsDir:         viper.GetString("ports_dir"),
		MakeBin:          viper.GetString("make_bin"),
		PkgBin:           viper.GetString("pkg_bin"),
		PkgDB:            viper.GetString("pkg_db"),
		PortDBDir:        viper.GetString("port_dbdir"),
		InstalledBackend: viper.GetString("installed_backend"),
		IncludeMoved:     viper.GetBool("include_moved"),
		FieldPolicy:      viper.GetString("field_policy"),
	}
}
