package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("minimal config with defaults", func(t *testing.T) {
		path := writeConfig(t, `
transport:
  token: test-token
feeds:
  - url: https://example.com/feed.xml
    destinations: ["123"]
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 10*time.Minute, cfg.Schedule.Interval)
		assert.Equal(t, 1, cfg.Schedule.Concurrency)
		assert.Equal(t, "https://discord.com/api/v10", cfg.Transport.APIBase)
		assert.Equal(t, "FeedFan", cfg.Transport.SenderName)
		assert.Equal(t, "probe", cfg.Icon.Strategy)
		assert.Equal(t, "watermark", cfg.Dedup.Strategy)
		assert.Equal(t, 200, cfg.Dedup.SeenSize)
		require.Len(t, cfg.Feeds, 1)
		assert.Equal(t, "https://example.com/feed.xml", cfg.Feeds[0].Name, "name defaults to url")
	})

	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 10s
schedule:
  interval: 15m
  concurrency: 3
transport:
  api_base: https://example.com/api
  token: tok
  sender_name: Herald
icon:
  strategy: service
dedup:
  strategy: seen
  seen_size: 50
feeds:
  - url: https://a.example.com/rss
    name: Feed A
    destinations: ["1", "2"]
  - url: https://b.example.com/rss
    destinations: ["3"]
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 15*time.Minute, cfg.Schedule.Interval)
		assert.Equal(t, 3, cfg.Schedule.Concurrency)
		assert.Equal(t, "Herald", cfg.Transport.SenderName)
		assert.Equal(t, "service", cfg.Icon.Strategy)
		assert.Equal(t, "seen", cfg.Dedup.Strategy)
		assert.Equal(t, 50, cfg.Dedup.SeenSize)

		feeds := cfg.GetFeeds()
		require.Len(t, feeds, 2)
		assert.Equal(t, "Feed A", feeds[0].Name)
		assert.Equal(t, []string{"1", "2"}, feeds[0].Destinations)
	})

	t.Run("environment expansion", func(t *testing.T) {
		t.Setenv("FEEDFAN_TOKEN", "secret-token")
		path := writeConfig(t, `
transport:
  token: ${FEEDFAN_TOKEN}
feeds:
  - url: https://example.com/feed.xml
    destinations: ["123"]
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "secret-token", cfg.Transport.Token)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, "feeds: [broken")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "no feeds",
			yaml:    "transport:\n  token: t\n",
			wantErr: "at least one feed",
		},
		{
			name: "feed without url",
			yaml: `
transport:
  token: t
feeds:
  - destinations: ["1"]
`,
			wantErr: "feeds[0].url",
		},
		{
			name: "feed without destinations",
			yaml: `
transport:
  token: t
feeds:
  - url: https://example.com/rss
`,
			wantErr: "feeds[0].destinations",
		},
		{
			name: "missing token",
			yaml: `
feeds:
  - url: https://example.com/rss
    destinations: ["1"]
`,
			wantErr: "transport.token",
		},
		{
			name: "interval too short",
			yaml: `
transport:
  token: t
schedule:
  interval: 5s
feeds:
  - url: https://example.com/rss
    destinations: ["1"]
`,
			wantErr: "schedule.interval",
		},
		{
			name: "bad icon strategy",
			yaml: `
transport:
  token: t
icon:
  strategy: magic
feeds:
  - url: https://example.com/rss
    destinations: ["1"]
`,
			wantErr: "icon.strategy",
		},
		{
			name: "bad dedup strategy",
			yaml: `
transport:
  token: t
dedup:
  strategy: bloom
feeds:
  - url: https://example.com/rss
    destinations: ["1"]
`,
			wantErr: "dedup.strategy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.yaml)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	path := writeConfig(t, `
transport:
  token: t
feeds:
  - url: https://example.com/rss
    destinations: ["1"]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, VerifyAgainstEmbeddedSchema(cfg))
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)
}
