package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv overlays cfg with the environment. Unset variables leave the
// current value. It panics on a malformed value, like the other loaders.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
