package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, config.BaseURL)
	assert.Equal(t, "production", config.ENV)
	assert.Equal(t, 185*time.Second, config.Timeout())
	assert.Equal(t, DefaultMaxPoolSize, config.PoolSize())
	assert.False(t, config.TelegramEnabled())
	assert.Error(t, config.Validate())
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	body := `{
		"env": "DEV",
		"base_url": "http://localhost:9000",
		"api_key": "key-from-file",
		"partner_code": "P01",
		"channel": "web",
		"timeout_seconds": 20,
		"telegram": {"token": "bot-token", "channel_id": -100123}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(body), 0o600))

	config, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "DEV", config.ENV)
	assert.Equal(t, "http://localhost:9000/", config.BaseURL)
	assert.Equal(t, "key-from-file", config.APIKey)
	assert.Equal(t, 20*time.Second, config.Timeout())
	assert.Equal(t, int64(-100123), config.Telegram.ChannelID)
	assert.True(t, config.TelegramEnabled())
	assert.NoError(t, config.Validate())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"api_key":"file","channel":"web"}`), 0o600))

	t.Setenv("API_KEY", "from-env")
	t.Setenv("PARTNER_CODE", "P99")
	t.Setenv("PAYOUT_MAX_POOL_SIZE", "3")
	t.Setenv("TELEGRAM_CHANNEL_ID", "42")

	config, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env", config.APIKey)
	assert.Equal(t, "P99", config.PartnerCode)
	assert.Equal(t, "web", config.Channel)
	assert.Equal(t, 3, config.PoolSize())
	assert.Equal(t, int64(42), config.Telegram.ChannelID)
}

func TestLoadConfig_BrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{not json`), 0o600))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "complete", config: Config{APIKey: "k", PartnerCode: "p", Channel: "c"}},
		{name: "no key", config: Config{PartnerCode: "p", Channel: "c"}, wantErr: true},
		{name: "no channel", config: Config{APIKey: "k", PartnerCode: "p"}, wantErr: true},
		{name: "empty", config: Config{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
