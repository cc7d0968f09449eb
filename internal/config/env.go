package config

import (
	"fmt"
	"os"
	"strings"
)

// Env is the process configuration, read once at startup.
type Env struct {
	AppAddr string
	GinMode string

	// Hosted backend project. URL and anon key are required.
	SupabaseURL       string
	SupabaseAnonKey   string
	SupabaseJWTSecret string

	// Booking API base. Defaults to the project's edge function path.
	APIBaseURL string

	CORSOrigins []string
}

// LoadEnv reads configuration from the environment. It fails when the
// hosted backend credentials are missing; nothing works without them.
func LoadEnv() (Env, error) {
	env := Env{
		AppAddr:           getenv("APP_ADDR", ":8080"),
		GinMode:           strings.TrimSpace(os.Getenv("GIN_MODE")),
		SupabaseURL:       strings.TrimRight(strings.TrimSpace(os.Getenv("SUPABASE_URL")), "/"),
		SupabaseAnonKey:   strings.TrimSpace(os.Getenv("SUPABASE_ANON_KEY")),
		SupabaseJWTSecret: strings.TrimSpace(os.Getenv("SUPABASE_JWT_SECRET")),
	}

	if env.SupabaseURL == "" {
		return env, fmt.Errorf("SUPABASE_URL is required")
	}
	if env.SupabaseAnonKey == "" {
		return env, fmt.Errorf("SUPABASE_ANON_KEY is required")
	}

	env.APIBaseURL = getenv("API_BASE_URL", env.SupabaseURL+"/functions/v1/api")

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSOrigins = append(env.CORSOrigins, o)
			}
		}
	} else {
		env.CORSOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	return env, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
