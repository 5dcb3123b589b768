package internal

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Config holds application settings
type Config struct {
	// User configurable settings
	Model          string
	Models         []string
	BaseURL        string
	APIKey         string
	RequestTimeout time.Duration
	QuestionType   string
	Count          int
	Humor          bool
	Verbose        bool
	Quiet          bool
	MCPLogEnabled  bool

	// Fixed XDG paths (not configurable)
	ConfigDir string
	CacheDir  string
	TempDir   string
}

//go:embed config.toml instructions.tmpl
var defaultFS embed.FS

// DefaultModels are the models offered when the config doesn't list any
var DefaultModels = []string{"llama3-70b-8192", "llama3-8b-8192", "mixtral-8x7b-32768", "gemma-7b-it"}

// ensureDefaultFile checks if a file exists in the specified directory
// and creates it from the embedded default if it doesn't exist
func ensureDefaultFile(configDir, embedFilename, description string) error {
	filePath := filepath.Join(configDir, embedFilename)

	if FileExists(filePath) {
		return nil
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	defaultContent, err := defaultFS.ReadFile(embedFilename)
	if err != nil {
		return fmt.Errorf("reading embedded default %s: %w", description, err)
	}

	if err := os.WriteFile(filePath, defaultContent, 0644); err != nil {
		return fmt.Errorf("writing default %s: %w", description, err)
	}

	fmt.Fprintf(os.Stderr, "Created default %s at %s\n", description, filePath)
	return nil
}

// EnsureDefaultConfig checks if a config file exists in the XDG config directory
// and creates it from the embedded default if it doesn't exist
func EnsureDefaultConfig(configDir string) error {
	return ensureDefaultFile(configDir, "config.toml", "configuration")
}

// newViper sets defaults, config file locations and environment bindings
func newViper(configDir, configFile string) *viper.Viper {
	v := viper.New()

	v.SetDefault("model", DefaultModels[0])
	v.SetDefault("models", DefaultModels)
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("request_timeout", 2*time.Minute)
	v.SetDefault("question_type", MCQ.String())
	v.SetDefault("count", 4)
	v.SetDefault("humor", false)
	v.SetDefault("verbose", false)
	v.SetDefault("quiet", false)
	v.SetDefault("mcp_log", false)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("TUBEQUIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// Groq key first, then any OpenAI-compatible key
	_ = v.BindEnv("api_key", "TUBEQUIZ_API_KEY", "GROQ_API_KEY", "OPENAI_API_KEY")

	return v
}

// InitConfig initializes Viper and loads configuration. An empty configFile
// searches the XDG config directory and the working directory.
func InitConfig(configFile string) *Config {
	configDir := filepath.Join(xdg.ConfigHome, "tubequiz")
	cacheDir := filepath.Join(xdg.CacheHome, "tubequiz")
	tempDir := filepath.Join(cacheDir, "subtitles")

	v := newViper(configDir, configFile)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: Error reading config file: %v\n", err)
		}
	}

	config := &Config{
		Model:          v.GetString("model"),
		Models:         v.GetStringSlice("models"),
		BaseURL:        v.GetString("base_url"),
		APIKey:         v.GetString("api_key"),
		RequestTimeout: v.GetDuration("request_timeout"),
		QuestionType:   v.GetString("question_type"),
		Count:          v.GetInt("count"),
		Humor:          v.GetBool("humor"),
		Verbose:        v.GetBool("verbose"),
		Quiet:          v.GetBool("quiet"),
		MCPLogEnabled:  v.GetBool("mcp_log"),

		ConfigDir: configDir,
		CacheDir:  cacheDir,
		TempDir:   tempDir,
	}

	if len(config.Models) == 0 {
		config.Models = DefaultModels
	}

	if config.Verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", v.ConfigFileUsed())
	}

	return config
}
