package config

import "testing"

func TestLoadEnvRequiresBackendCredentials(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")
	if _, err := LoadEnv(); err == nil {
		t.Fatal("LoadEnv accepted empty credentials")
	}

	t.Setenv("SUPABASE_URL", "https://demo.supabase.co")
	if _, err := LoadEnv(); err == nil {
		t.Fatal("LoadEnv accepted missing anon key")
	}

	t.Setenv("SUPABASE_ANON_KEY", "anon")
	env, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv error: %v", err)
	}
	if env.APIBaseURL != "https://demo.supabase.co/functions/v1/api" {
		t.Errorf("APIBaseURL = %s", env.APIBaseURL)
	}
	if env.AppAddr != ":8080" {
		t.Errorf("AppAddr = %s", env.AppAddr)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://demo.supabase.co/")
	t.Setenv("SUPABASE_ANON_KEY", "anon")
	t.Setenv("API_BASE_URL", "https://api.tours.example/v1")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://admin.tours.example, https://tours.example")

	env, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv error: %v", err)
	}
	if env.SupabaseURL != "https://demo.supabase.co" {
		t.Errorf("SupabaseURL = %s, trailing slash kept", env.SupabaseURL)
	}
	if env.APIBaseURL != "https://api.tours.example/v1" {
		t.Errorf("APIBaseURL = %s", env.APIBaseURL)
	}
	if len(env.CORSOrigins) != 2 || env.CORSOrigins[0] != "https://admin.tours.example" {
		t.Errorf("CORSOrigins = %v", env.CORSOrigins)
	}
}
