package config

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) LookupFunc {
	return func(key string) string { return env[key] }
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			ShutdownTimeout: time.Second,
			RequestTimeout:  time.Second,
		},
		Logs:    LogsConfig{Dir: "."},
		Upload:  UploadConfig{MaxFileSize: 1, MaxConcurrent: 1, MaxWaitTime: time.Second},
		Cache:   CacheConfig{Enabled: true, NumCounters: 10, MaxCost: 10, BufferItems: 64},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadWith(lookupFrom(nil))
	if err != nil {
		t.Fatalf("LoadWith() error = %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Server.ShutdownTimeout != 30*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want %v", cfg.Server.ShutdownTimeout, 30*time.Second)
	}
	if cfg.Logs.Dir != "." {
		t.Errorf("Logs.Dir = %q, want %q", cfg.Logs.Dir, ".")
	}
	if cfg.Upload.MaxFileSize != 104857600 {
		t.Errorf("Upload.MaxFileSize = %d, want %d", cfg.Upload.MaxFileSize, 104857600)
	}
	if cfg.Upload.MaxConcurrent != 4 {
		t.Errorf("Upload.MaxConcurrent = %d, want %d", cfg.Upload.MaxConcurrent, 4)
	}
	if cfg.Upload.MaxWaitTime != 30*time.Second {
		t.Errorf("Upload.MaxWaitTime = %v, want %v", cfg.Upload.MaxWaitTime, 30*time.Second)
	}
	if !cfg.Cache.Enabled {
		t.Error("Cache.Enabled = false, want true")
	}
	if cfg.Cache.MaxCost != 1000000 {
		t.Errorf("Cache.MaxCost = %d, want %d", cfg.Cache.MaxCost, 1000000)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	cfg, err := LoadWith(lookupFrom(map[string]string{
		"SERVER_PORT":         "9090",
		"SERVER_READ_TIMEOUT": "45s",
		"CACHE_ENABLED":       "false",
		"CACHE_NUM_COUNTERS":  "0",
		"LOG_LEVEL":           "debug",
		"LOG_FORMAT":          "json",
	}))
	if err != nil {
		t.Fatalf("LoadWith() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want %v", cfg.Server.ReadTimeout, 45*time.Second)
	}
	if cfg.Cache.Enabled {
		t.Error("Cache.Enabled = true, want false")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want debug/json", cfg.Logging)
	}
}

func TestLoad_AltEnvVar(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"primary", map[string]string{"LOGS_DIR": "/var/log/cookies"}, "/var/log/cookies"},
		{"fallback", map[string]string{"COOKIE_LOGS_DIR": "/srv/cookies"}, "/srv/cookies"},
		{"primary wins", map[string]string{"LOGS_DIR": "/a", "COOKIE_LOGS_DIR": "/b"}, "/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadWith(lookupFrom(tt.env))
			if err != nil {
				t.Fatalf("LoadWith() error = %v", err)
			}
			if cfg.Logs.Dir != tt.want {
				t.Errorf("Logs.Dir = %q, want %q", cfg.Logs.Dir, tt.want)
			}
		})
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "3000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 3000)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantMsg string
	}{
		{"bad integer", map[string]string{"SERVER_PORT": "eighty"}, "SERVER_PORT"},
		{"bad duration", map[string]string{"SERVER_IDLE_TIMEOUT": "soon"}, "SERVER_IDLE_TIMEOUT"},
		{"bad boolean", map[string]string{"CACHE_ENABLED": "maybe"}, "CACHE_ENABLED"},
		{"failed validation", map[string]string{"LOG_FORMAT": "xml"}, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWith(lookupFrom(tt.env))
			if err == nil {
				t.Fatal("LoadWith() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error should mention %s: %v", tt.wantMsg, err)
			}
		})
	}
}

func TestLoad_CommaSeparatedSlice(t *testing.T) {
	cfg, err := LoadWith(lookupFrom(map[string]string{
		"SERVER_API_KEYS": "alpha, beta ,,gamma",
	}))
	if err != nil {
		t.Fatalf("LoadWith() error = %v", err)
	}

	expected := []string{"alpha", "beta", "gamma"}
	if len(cfg.Server.APIKeys) != len(expected) {
		t.Fatalf("APIKeys length = %d, want %d", len(cfg.Server.APIKeys), len(expected))
	}
	for i, v := range expected {
		if cfg.Server.APIKeys[i] != v {
			t.Errorf("APIKeys[%d] = %q, want %q", i, cfg.Server.APIKeys[i], v)
		}
	}
}

func TestLoad_SliceUnsetIsEmpty(t *testing.T) {
	cfg, err := LoadWith(lookupFrom(nil))
	if err != nil {
		t.Fatalf("LoadWith() error = %v", err)
	}
	if len(cfg.Server.APIKeys) != 0 {
		t.Errorf("APIKeys = %v, want empty", cfg.Server.APIKeys)
	}
}

func TestLoadStruct_Required(t *testing.T) {
	var target struct {
		Token string `env:"API_TOKEN" required:"true"`
	}

	err := loadStruct(reflect.ValueOf(&target).Elem(), lookupFrom(nil))
	if err == nil {
		t.Fatal("loadStruct() expected error for missing API_TOKEN")
	}
	if !strings.Contains(err.Error(), "API_TOKEN") {
		t.Errorf("error should mention API_TOKEN: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"valid", func(*Config) {}, ""},
		{"invalid port", func(c *Config) { c.Server.Port = 99999 }, "SERVER_PORT"},
		{"zero shutdown", func(c *Config) { c.Server.ShutdownTimeout = 0 }, "SERVER_SHUTDOWN_TIMEOUT"},
		{"empty logs dir", func(c *Config) { c.Logs.Dir = "  " }, "LOGS_DIR"},
		{"zero upload size", func(c *Config) { c.Upload.MaxFileSize = 0 }, "UPLOAD_MAX_FILE_SIZE"},
		{"zero concurrency", func(c *Config) { c.Upload.MaxConcurrent = 0 }, "UPLOAD_MAX_CONCURRENT"},
		{"cache without cost", func(c *Config) { c.Cache.MaxCost = 0 }, "CACHE_MAX_COST"},
		{"disabled cache skips sizing", func(c *Config) {
			c.Cache = CacheConfig{Enabled: false}
		}, ""},
		{"invalid log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"uppercase log level", func(c *Config) { c.Logging.Level = "DEBUG" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error mentioning %s", tt.wantMsg)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error should mention %s: %v", tt.wantMsg, err)
			}
		})
	}
}

func TestValidate_CollectsAllFailures(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	for _, want := range []string{"SERVER_PORT", "LOG_FORMAT"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %s: %v", want, err)
		}
	}
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"", 8080, ":8080"},
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"127.0.0.1", 3000, "127.0.0.1:3000"},
		{"::1", 443, "[::1]:443"},
	}

	for _, tt := range tests {
		cfg := &ServerConfig{Host: tt.host, Port: tt.port}
		got := cfg.Addr()
		if got != tt.want {
			t.Errorf("Addr() with host=%q, port=%d = %q, want %q", tt.host, tt.port, got, tt.want)
		}
	}
}

func TestConfigString(t *testing.T) {
	str := validConfig().String()
	for _, want := range []string{`Dir: "."`, "Port: 8080", `Level: "info"`} {
		if !strings.Contains(str, want) {
			t.Errorf("String() = %s, missing %s", str, want)
		}
	}
}
