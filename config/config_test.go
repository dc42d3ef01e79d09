package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	if AppConfig.AppPort == "" {
		t.Error("APP_PORT has no default")
	}
	if AppConfig.StorageBackend == "" {
		t.Error("STORAGE_BACKEND has no default")
	}
	if AppConfig.MaxRequestsPerMin <= 0 {
		t.Error("MAX_REQUESTS_PER_MIN has no default")
	}
}

func TestIsProduction(t *testing.T) {
	defer func(prev string) { AppConfig.Env = prev }(AppConfig.Env)

	AppConfig.Env = "development"
	if IsProduction() {
		t.Error("development reported as production")
	}
	AppConfig.Env = "production"
	if !IsProduction() {
		t.Error("production not detected")
	}
}
