package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `environment: test
server:
  port: 3001
  read_timeout: 10s
  write_timeout: 10s
  shutdown_timeout: 5s
store:
  file: portfolios.json
coingecko:
  base_url: https://api.coingecko.com/api/v3
  api_key: demo
  days: 365
  timeout: 30s
prediction:
  base_url: http://localhost:5000
  timeout: 30s
log:
  level: info
  format: console
  output: stdout
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 3001 {
		t.Fatalf("unexpected port %d", cfg.Server.Port)
	}
	if cfg.Store.File != "portfolios.json" {
		t.Fatalf("unexpected store file %q", cfg.Store.File)
	}
	if cfg.CoinGecko.Days != 365 {
		t.Fatalf("unexpected days %d", cfg.CoinGecko.Days)
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("COINGECKO_API_KEY", "from-env")
	t.Setenv("PREDICTION_URL", "http://predictor:5000")
	t.Setenv("STORE_FILE", "/tmp/data.json")
	t.Setenv("PORT", "9090")

	cfg, err := LoadWithEnv(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.CoinGecko.APIKey != "from-env" {
		t.Fatalf("api key override not applied: %q", cfg.CoinGecko.APIKey)
	}
	if cfg.Prediction.BaseURL != "http://predictor:5000" {
		t.Fatalf("prediction url override not applied: %q", cfg.Prediction.BaseURL)
	}
	if cfg.Store.File != "/tmp/data.json" {
		t.Fatalf("store file override not applied: %q", cfg.Store.File)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("port override not applied: %d", cfg.Server.Port)
	}
}

func TestValidateMissingStoreFile(t *testing.T) {
	bad := `environment: test
coingecko:
  base_url: https://api.coingecko.com/api/v3
prediction:
  base_url: http://localhost:5000
`
	if _, err := Load(writeConfig(t, bad)); err == nil {
		t.Fatalf("expected validation error")
	}
}
