package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
provider: anthropic
providers:
  anthropic:
    api_key: sk-ant
  ollama:
    model: qwen2.5:7b
pipeline:
  enhance_threshold: 70
server:
  read_timeout: 10s
`), 0600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "sk-ant", cfg.Providers.Anthropic.APIKey)
	assert.Equal(t, "qwen2.5:7b", cfg.Providers.Ollama.Model)
	assert.Equal(t, "http://localhost:11434", cfg.Providers.Ollama.BaseURL)
	assert.Equal(t, 70, cfg.Pipeline.EnhanceThreshold)
	assert.Equal(t, "gpt-4-turbo", cfg.Pipeline.EngineerModel)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, ":5000", cfg.Server.Addr)
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: [unclosed"), 0600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	require.NoError(t, cfg.SetProvider("gemini", ProviderConfig{APIKey: "g-key", Model: "gemini-1.5-flash"}))
	require.NoError(t, cfg.SaveFile(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("XAI_API_KEY", "xai-env")
	t.Setenv("OLLAMA_HOST", "http://gpu-box:11434")
	t.Setenv("PROMPTPRO_ADDR", ":8080")
	t.Setenv("PROMPTPRO_ENHANCE_THRESHOLD", "65")
	t.Setenv("PROMPTPRO_CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("PROMPTPRO_WRITE_TIMEOUT", "90s")
	t.Setenv("PROMPTPRO_CUSTOM_BASE_URL", "http://localhost:1234/v1")

	cfg := DefaultConfig()
	cfg.Providers.OpenAI.APIKey = "sk-file"
	cfg.Providers.Anthropic.APIKey = "sk-ant-file"
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "sk-env", cfg.Providers.OpenAI.APIKey)
	assert.Equal(t, "sk-ant-file", cfg.Providers.Anthropic.APIKey)
	assert.Equal(t, "xai-env", cfg.Providers.XAI.APIKey)
	assert.Equal(t, "http://gpu-box:11434", cfg.Providers.Ollama.BaseURL)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 65, cfg.Pipeline.EnhanceThreshold)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 90*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "http://localhost:1234/v1", cfg.Providers.Custom.BaseURL)
}

func TestResolveWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PROMPTPRO_LOG_LEVEL", "debug")

	assert.False(t, Exists())

	cfg, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 80, cfg.Pipeline.EnhanceThreshold)
}

func TestConfigured(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Providers.OpenAI.APIKey = "sk"

	tests := []struct {
		id   string
		want bool
	}{
		{"openai", true},
		{"anthropic", false},
		{"ollama", true},
		{"custom", false},
		{"groq", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.Configured(tt.id))
		})
	}
}

func TestGetProvider(t *testing.T) {
	p := GetProvider("xai")
	require.NotNil(t, p)
	assert.Equal(t, "grok-2-1212", p.DefaultModel)
	assert.Nil(t, GetProvider("nope"))

	assert.Error(t, DefaultConfig().SetProvider("nope", ProviderConfig{}))
}
