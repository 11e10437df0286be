package infra

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("TRANSCRIPT_LANGUAGES", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.OpenAIModel != "gpt-3.5-turbo" {
		t.Fatalf("OpenAIModel mismatch: got %q want %q", cfg.OpenAIModel, "gpt-3.5-turbo")
	}
	if cfg.TranscriptBaseURL != "https://www.youtube.com" {
		t.Fatalf("TranscriptBaseURL mismatch: got %q", cfg.TranscriptBaseURL)
	}
	if len(cfg.TranscriptLanguages) != 1 || cfg.TranscriptLanguages[0] != "en" {
		t.Fatalf("TranscriptLanguages mismatch: %#v", cfg.TranscriptLanguages)
	}
	if cfg.RateLimitPerMin != 30 {
		t.Fatalf("RateLimitPerMin mismatch: got %d want 30", cfg.RateLimitPerMin)
	}
}

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("LoadConfig expected error when DATABASE_URL is empty")
	}
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("LoadConfig expected error when JWT_SECRET is empty")
	}
}

func TestLoadConfigParsesLists(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TRANSCRIPT_LANGUAGES", "id, en ,")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	want := []string{"id", "en"}
	if len(cfg.TranscriptLanguages) != len(want) {
		t.Fatalf("TranscriptLanguages mismatch: got %#v want %#v", cfg.TranscriptLanguages, want)
	}
	for i, lang := range want {
		if cfg.TranscriptLanguages[i] != lang {
			t.Fatalf("TranscriptLanguages[%d] = %q, want %q", i, cfg.TranscriptLanguages[i], lang)
		}
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "https://app.example.com" {
		t.Fatalf("AllowedOrigins mismatch: %#v", cfg.AllowedOrigins)
	}
}
