package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewViper_Defaults(t *testing.T) {
	v := newViper(t.TempDir(), "")

	if got := v.GetString("model"); got != "llama3-70b-8192" {
		t.Errorf("model = %q", got)
	}
	if got := v.GetString("base_url"); got != DefaultBaseURL {
		t.Errorf("base_url = %q", got)
	}
	if got := v.GetDuration("request_timeout"); got != 2*time.Minute {
		t.Errorf("request_timeout = %v", got)
	}
	if got := v.GetString("question_type"); got != "MCQ" {
		t.Errorf("question_type = %q", got)
	}
	if got := v.GetInt("count"); got != 4 {
		t.Errorf("count = %d", got)
	}
	if got := v.GetStringSlice("models"); len(got) != len(DefaultModels) {
		t.Errorf("models = %v", got)
	}
}

func TestNewViper_Environment(t *testing.T) {
	t.Setenv("TUBEQUIZ_MODEL", "gemma-7b-it")
	t.Setenv("TUBEQUIZ_COUNT", "7")
	t.Setenv("TUBEQUIZ_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "gsk-test")

	v := newViper(t.TempDir(), "")

	if got := v.GetString("model"); got != "gemma-7b-it" {
		t.Errorf("model = %q; want env override", got)
	}
	if got := v.GetInt("count"); got != 7 {
		t.Errorf("count = %d; want 7", got)
	}
	if got := v.GetString("api_key"); got != "gsk-test" {
		t.Errorf("api_key = %q; want GROQ_API_KEY value", got)
	}
}

func TestNewViper_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "model = \"llama3-8b-8192\"\nquestion_type = \"short-answer\"\nhumor = true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	v := newViper(dir, "")
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("reading config: %v", err)
	}

	if got := v.GetString("model"); got != "llama3-8b-8192" {
		t.Errorf("model = %q", got)
	}
	if got := v.GetString("question_type"); got != "short-answer" {
		t.Errorf("question_type = %q", got)
	}
	if !v.GetBool("humor") {
		t.Error("humor = false; want true")
	}
}

func TestEnsureDefaultConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tubequiz")

	if err := EnsureDefaultConfig(dir); err != nil {
		t.Fatalf("EnsureDefaultConfig: %v", err)
	}

	written, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	if err != nil {
		t.Fatalf("reading written config: %v", err)
	}
	embedded, _ := defaultFS.ReadFile("config.toml")
	if string(written) != string(embedded) {
		t.Error("written config differs from embedded default")
	}

	// existing files are left alone
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("model = \"x\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := EnsureDefaultConfig(dir); err != nil {
		t.Fatalf("EnsureDefaultConfig: %v", err)
	}
	again, _ := os.ReadFile(filepath.Join(dir, "config.toml"))
	if string(again) != "model = \"x\"\n" {
		t.Error("existing config was overwritten")
	}
}
