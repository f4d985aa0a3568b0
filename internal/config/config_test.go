package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldWD) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.OutputDir != "." {
		t.Fatalf("OutputDir = %q, want .", cfg.OutputDir)
	}
	if cfg.RequestTimeout != 60*time.Second {
		t.Fatalf("RequestTimeout = %v, want 60s", cfg.RequestTimeout)
	}
}

func TestLoad_File(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "rating_report.yaml")
	data := "supabase_url: https://xyz.supabase.co\noutput_dir: ./reports\nrequest_timeout: 10s\nexport_json: true\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.SupabaseURL != "https://xyz.supabase.co" {
		t.Fatalf("SupabaseURL = %q", cfg.SupabaseURL)
	}
	if cfg.OutputDir != "./reports" {
		t.Fatalf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if !cfg.ExportJSON {
		t.Fatal("ExportJSON = false, want true")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rating_report.yaml")
	data := "supabase_url: https://file.supabase.co\nanon_key: file-key\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SUPABASE_URL", "https://env.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "env-key")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.SupabaseURL != "https://env.supabase.co" {
		t.Fatalf("SupabaseURL = %q, env should win", cfg.SupabaseURL)
	}
	if cfg.AnonKey != "env-key" {
		t.Fatalf("AnonKey = %q, env should win", cfg.AnonKey)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing URL")
	}
	cfg.SupabaseURL = "https://xyz.supabase.co"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing key")
	}
	cfg.AnonKey = "key"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
}
