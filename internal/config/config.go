package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/nukit/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyPluginOutputDir   = "plugin.output_dir"
	KeyPluginTemplateDir = "plugin.template_dir"
	KeyPDFPages          = "pdf.pages"
)

// Dir returns the path to the config directory. NUKIT_HOME overrides the
// default of ~/.nukit/.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.nukit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the config file and environment.
// Nested keys map to env vars with dots replaced by underscores, so
// plugin.output_dir is read from NUKIT_PLUGIN_OUTPUT_DIR.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Resolve returns flagValue when it is set, otherwise the configured value
// for key.
func Resolve(flagValue, key string) string {
	if flagValue != "" {
		return flagValue
	}
	return Get(key)
}
