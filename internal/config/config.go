package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Provider is the family used for model hints no other family claims
	Provider    string          `yaml:"provider"`
	Providers   ProvidersConfig `yaml:"providers"`
	Server      ServerConfig    `yaml:"server"`
	Log         LogConfig       `yaml:"log"`
	Pipeline    PipelineConfig  `yaml:"pipeline"`
	PatternsDir string          `yaml:"patterns_dir,omitempty"`
	CacheSize   int             `yaml:"cache_size,omitempty"`
}

type ProviderConfig struct {
	APIKey  string `yaml:"api_key,omitempty"`
	Model   string `yaml:"model,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`
}

type ProvidersConfig struct {
	OpenAI    ProviderConfig `yaml:"openai,omitempty"`
	XAI       ProviderConfig `yaml:"xai,omitempty"`
	Anthropic ProviderConfig `yaml:"anthropic,omitempty"`
	Gemini    ProviderConfig `yaml:"gemini,omitempty"`
	Ollama    ProviderConfig `yaml:"ollama,omitempty"`
	Custom    ProviderConfig `yaml:"custom,omitempty"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	CORSOrigins  []string      `yaml:"cors_origins,omitempty"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	Encoding   string `yaml:"encoding"`
	OutputPath string `yaml:"output_path,omitempty"`
}

type PipelineConfig struct {
	EnhanceThreshold int    `yaml:"enhance_threshold"`
	EngineerModel    string `yaml:"engineer_model"`
	DefaultUseCase   string `yaml:"default_use_case"`
	DefaultTargetLLM string `yaml:"default_target_llm"`
	DefaultVariants  int    `yaml:"default_variants"`
}

func DefaultConfig() *Config {
	return &Config{
		Provider: "openai",
		Providers: ProvidersConfig{
			Ollama: ProviderConfig{
				BaseURL: "http://localhost:11434",
				Model:   "llama3.1:8b",
			},
		},
		Server: ServerConfig{
			Addr:         ":5000",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 3 * time.Minute,
			CORSOrigins:  []string{"*"},
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
		Pipeline: PipelineConfig{
			EnhanceThreshold: 80,
			EngineerModel:    "gpt-4-turbo",
			DefaultUseCase:   "content-marketing",
			DefaultTargetLLM: "GPT-4",
			DefaultVariants:  3,
		},
		CacheSize: 256,
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "promptpro"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultPatternsDir is where custom pattern files live unless configured otherwise
func DefaultPatternsDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "patterns"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the config file. A missing file yields nil, nil.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads a config file, filling unset fields with defaults.
// A missing file yields nil, nil.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve loads the config file, falling back to defaults when there is none,
// and applies environment overrides on top
func Resolve() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// ProviderSettings returns the settings of one provider family
func (c *Config) ProviderSettings(id string) ProviderConfig {
	if pc := c.providerRef(id); pc != nil {
		return *pc
	}
	return ProviderConfig{}
}

// SetProvider replaces the settings of one provider family
func (c *Config) SetProvider(id string, pc ProviderConfig) error {
	ref := c.providerRef(id)
	if ref == nil {
		return fmt.Errorf("unknown provider: %s", id)
	}
	*ref = pc
	return nil
}

func (c *Config) providerRef(id string) *ProviderConfig {
	switch id {
	case "openai":
		return &c.Providers.OpenAI
	case "xai":
		return &c.Providers.XAI
	case "anthropic":
		return &c.Providers.Anthropic
	case "gemini":
		return &c.Providers.Gemini
	case "ollama":
		return &c.Providers.Ollama
	case "custom":
		return &c.Providers.Custom
	default:
		return nil
	}
}

// envOverlay holds PROMPTPRO_* variables. Zero values leave the file value alone.
type envOverlay struct {
	Provider         string
	Addr             string
	ReadTimeout      time.Duration `split_words:"true"`
	WriteTimeout     time.Duration `split_words:"true"`
	CORSOrigins      []string      `split_words:"true"`
	LogLevel         string        `split_words:"true"`
	LogEncoding      string        `split_words:"true"`
	LogOutput        string        `split_words:"true"`
	EnhanceThreshold int           `split_words:"true"`
	EngineerModel    string        `split_words:"true"`
	PatternsDir      string        `split_words:"true"`
	CacheSize        int           `split_words:"true"`
	CustomBaseURL    string        `split_words:"true"`
	CustomAPIKey     string        `split_words:"true"`
	CustomModel      string        `split_words:"true"`
}

// providerEnv holds the conventional unprefixed provider variables
type providerEnv struct {
	OpenAIKey    string `envconfig:"OPENAI_API_KEY"`
	XAIKey       string `envconfig:"XAI_API_KEY"`
	AnthropicKey string `envconfig:"ANTHROPIC_API_KEY"`
	GeminiKey    string `envconfig:"GEMINI_API_KEY"`
	OllamaHost   string `envconfig:"OLLAMA_HOST"`
}

// ApplyEnv overrides file values with environment variables that are set
func (c *Config) ApplyEnv() error {
	var env envOverlay
	if err := envconfig.Process("promptpro", &env); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	var keys providerEnv
	if err := envconfig.Process("", &keys); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	setString(&c.Provider, env.Provider)
	setString(&c.Server.Addr, env.Addr)
	setDuration(&c.Server.ReadTimeout, env.ReadTimeout)
	setDuration(&c.Server.WriteTimeout, env.WriteTimeout)
	if len(env.CORSOrigins) > 0 {
		c.Server.CORSOrigins = env.CORSOrigins
	}
	setString(&c.Log.Level, env.LogLevel)
	setString(&c.Log.Encoding, env.LogEncoding)
	setString(&c.Log.OutputPath, env.LogOutput)
	setInt(&c.Pipeline.EnhanceThreshold, env.EnhanceThreshold)
	setString(&c.Pipeline.EngineerModel, env.EngineerModel)
	setString(&c.PatternsDir, env.PatternsDir)
	setInt(&c.CacheSize, env.CacheSize)
	setString(&c.Providers.Custom.BaseURL, env.CustomBaseURL)
	setString(&c.Providers.Custom.APIKey, env.CustomAPIKey)
	setString(&c.Providers.Custom.Model, env.CustomModel)

	setString(&c.Providers.OpenAI.APIKey, keys.OpenAIKey)
	setString(&c.Providers.XAI.APIKey, keys.XAIKey)
	setString(&c.Providers.Anthropic.APIKey, keys.AnthropicKey)
	setString(&c.Providers.Gemini.APIKey, keys.GeminiKey)
	setString(&c.Providers.Ollama.BaseURL, keys.OllamaHost)

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v time.Duration) {
	if v != 0 {
		*dst = v
	}
}
