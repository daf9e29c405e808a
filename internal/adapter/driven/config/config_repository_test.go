package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	repo := NewConfigRepository()

	t.Run("yaml", func(t *testing.T) {
		path := writeConfig(t, "config.yaml", `
data_dir: ./data
dir: ./out
report_name: campus
report_type: [csv, json]
trend: true
`)
		cfg, err := repo.LoadConfigFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.DataDir != "./data" || cfg.Dir != "./out" || cfg.ReportName != "campus" {
			t.Errorf("unexpected config: %+v", cfg)
		}
		if len(cfg.ReportType) != 2 || !cfg.Trend {
			t.Errorf("unexpected config: %+v", cfg)
		}
	})

	t.Run("toml", func(t *testing.T) {
		path := writeConfig(t, "config.toml", `
data_dir = "./data"
db_path = "history.db"
report_type = ["pdf"]
`)
		cfg, err := repo.LoadConfigFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.DataDir != "./data" || cfg.DBPath != "history.db" {
			t.Errorf("unexpected config: %+v", cfg)
		}
	})

	t.Run("json", func(t *testing.T) {
		path := writeConfig(t, "config.json", `{"data_dir": "./data", "report_name": "campus"}`)
		cfg, err := repo.LoadConfigFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.DataDir != "./data" || cfg.ReportName != "campus" {
			t.Errorf("unexpected config: %+v", cfg)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeConfig(t, "config.ini", "data_dir=./data")
		if _, err := repo.LoadConfigFile(path); err == nil {
			t.Error("expected an error for unsupported format")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
			t.Error("expected an error for a missing config file")
		}
	})

	t.Run("directory instead of file", func(t *testing.T) {
		if _, err := repo.LoadConfigFile(t.TempDir()); err == nil {
			t.Error("expected an error when the path is a directory")
		}
	})
}
