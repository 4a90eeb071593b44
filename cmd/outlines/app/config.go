package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/glacmap/outlines/pkg/constants"
)

// Config holds the application configuration loaded from config files,
// environment variables, and .env files. Flag values are merged in by
// UpdateFromFlags after cobra parses the command line.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Pipeline configuration
	Workdir    string
	RGIDir     string
	RGIVersion string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.outlines.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files before Viper env binding
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".outlines")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Format:  viper.GetString("format"),

		ConfigFile: viper.ConfigFileUsed(),

		Workdir:    viper.GetString("workdir"),
		RGIDir:     viper.GetString("rgi_dir"),
		RGIVersion: viper.GetString("rgi_version"),

		// LogLevel is set from the --log-level flag only; the LOG_LEVEL
		// env var is consulted by the logger at a lower precedence
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if config.RGIVersion == "" {
		config.RGIVersion = constants.DefaultRGIVersion
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags. Flag
// values take precedence over config file and environment variables.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel, workdir, rgiDir, rgiVersion string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if workdir != "" {
		c.Workdir = workdir
	}
	if rgiDir != "" {
		c.RGIDir = rgiDir
	}
	if rgiVersion != "" {
		c.RGIVersion = rgiVersion
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}
	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
