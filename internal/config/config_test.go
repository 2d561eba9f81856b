package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 5000 {
		t.Errorf("server.port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.Server.Mode != "development" {
		t.Errorf("server.mode = %q, want development", cfg.Server.Mode)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want text", cfg.Log.Format)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log.level = %q, want info", cfg.Log.Level)
	}
	if cfg.CORS.AllowedOrigins != "*" {
		t.Errorf("cors.allowed_origins = %q, want *", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PRINTCRAFT_SERVER_PORT", "8080")
	t.Setenv("PRINTCRAFT_LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 from env", cfg.Server.Port)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log.format = %q, want json from env", cfg.Log.Format)
	}
}

func TestServerConfigAddr(t *testing.T) {
	c := ServerConfig{Host: "0.0.0.0", Port: 5000}
	if got := c.Addr(); got != "0.0.0.0:5000" {
		t.Errorf("Addr() = %q, want 0.0.0.0:5000", got)
	}
}
