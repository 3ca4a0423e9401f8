package pkgconfig

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Bootstrap holds the few settings read from the environment before the
// config file can be located.
type Bootstrap struct {
	ConfigPath string `envconfig:"CONFIG_PATH" default:"/config/config.yaml"`
	Local      bool   `envconfig:"LOCAL" default:"false"`
}

// LoadBootstrap reads Bootstrap from environment variables.
//
// When LOCAL=true and CONFIG_PATH is not set explicitly, the path is resolved
// relative to the working directory.
func LoadBootstrap() (Bootstrap, error) {
	var b Bootstrap
	if err := envconfig.Process("", &b); err != nil {
		return Bootstrap{}, fmt.Errorf("failed to process bootstrap env: %w", err)
	}

	if b.Local && b.ConfigPath == "/config/config.yaml" {
		b.ConfigPath = "./config/config.yaml"
	}

	return b, nil
}
