package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/gametracker/internal/flagx"
	"github.com/dmitrijs2005/gametracker/internal/timex"
)

// FileConfig is the on-disk shape of a config file. Zero values leave the
// current setting alone.
type FileConfig struct {
	Storage        string         `json:"storage" yaml:"storage"`
	SQLitePath     string         `json:"sqlite_path" yaml:"sqlite_path"`
	RedisAddr      string         `json:"redis_addr" yaml:"redis_addr"`
	RedisPassword  string         `json:"redis_password" yaml:"redis_password"`
	RedisDB        int            `json:"redis_db" yaml:"redis_db"`
	Namespace      string         `json:"namespace" yaml:"namespace"`
	APIKey         string         `json:"api_key" yaml:"api_key"`
	CatalogURL     string         `json:"catalog_url" yaml:"catalog_url"`
	PageSize       int            `json:"page_size" yaml:"page_size"`
	CatalogTimeout timex.Duration `json:"catalog_timeout" yaml:"catalog_timeout"`
	LogLevel       string         `json:"log_level" yaml:"log_level"`
	LogFormat      string         `json:"log_format" yaml:"log_format"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
// It panics if the file cannot be read or parsed.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc FileConfig) apply(cfg *Config) {
	setString(&cfg.StorageBackend, fc.Storage)
	setString(&cfg.SQLitePath, fc.SQLitePath)
	setString(&cfg.RedisAddr, fc.RedisAddr)
	setString(&cfg.RedisPassword, fc.RedisPassword)
	setString(&cfg.Namespace, fc.Namespace)
	setString(&cfg.APIKey, fc.APIKey)
	setString(&cfg.CatalogURL, fc.CatalogURL)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)
	if fc.RedisDB != 0 {
		cfg.RedisDB = fc.RedisDB
	}
	if fc.PageSize != 0 {
		cfg.PageSize = fc.PageSize
	}
	if fc.CatalogTimeout.Duration != 0 {
		cfg.CatalogTimeout = fc.CatalogTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
