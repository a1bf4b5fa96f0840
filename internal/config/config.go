package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the console configuration, read from the environment.
type Config struct {
	Env     string        // Env is the current environment: local, development, production.
	Addr    string        // Addr is the console listen address.
	Backend BackendConfig // Backend holds the remote REST service configuration.
}

// BackendConfig struct holds the connection details for the backend REST service.
type BackendConfig struct {
	APIBaseURL     string        // APIBaseURL is the backend API root, e.g. `http://127.0.0.1:8000/api`.
	StorageBaseURL string        // StorageBaseURL is the static file root used to resolve attachment paths.
	Timeout        time.Duration // Timeout is applied to every backend request.
}

// MustLoad loads the configuration from environment variables and panics on
// missing or invalid required values.
func MustLoad() *Config {
	viper.SetEnvPrefix("STAFFDESK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("env", "local")
	viper.SetDefault("addr", ":8090")
	viper.SetDefault("backend.timeout", 10*time.Second)

	apiBaseURL := viper.GetString("backend.api_url")
	if apiBaseURL == "" {
		panic("backend api url is empty, set STAFFDESK_BACKEND_API_URL")
	}

	storageBaseURL := viper.GetString("backend.storage_url")
	if storageBaseURL == "" {
		panic("backend storage url is empty, set STAFFDESK_BACKEND_STORAGE_URL")
	}

	timeout := viper.GetDuration("backend.timeout")
	if timeout <= 0 {
		panic("failed to parse backend timeout from configuration")
	}

	return &Config{
		Env:  viper.GetString("env"),
		Addr: viper.GetString("addr"),
		Backend: BackendConfig{
			APIBaseURL:     strings.TrimRight(apiBaseURL, "/"),
			StorageBaseURL: strings.TrimRight(storageBaseURL, "/"),
			Timeout:        timeout,
		},
	}
}
