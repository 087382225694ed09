package app

import (
	"os"
	"path/filepath"
	"testing"
)

// unsetForTest removes key for the duration of the test.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	_ = os.Unsetenv(key)
}

func TestLoadEnvFiles_LoadsKeyValues(t *testing.T) {
	unsetForTest(t, "GOSUM_FOO")
	unsetForTest(t, "GOSUM_BAR")
	unsetForTest(t, "GOSUM_BAZ")

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "\n# sample dotenv file\nGOSUM_FOO=alpha\nexport GOSUM_BAR=\"beta gamma\"\nGOSUM_BAZ='delta'\nmalformed line\n"
	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	if err := LoadEnvFiles(envPath); err != nil {
		t.Fatalf("LoadEnvFiles error: %v", err)
	}
	for key, want := range map[string]string{"GOSUM_FOO": "alpha", "GOSUM_BAR": "beta gamma", "GOSUM_BAZ": "delta"} {
		if got := os.Getenv(key); got != want {
			t.Fatalf("%s=%q, want %q", key, got, want)
		}
	}
}

// Later files override earlier ones when loading multiple dotenv files.
func TestLoadEnvFiles_OverrideOrder(t *testing.T) {
	unsetForTest(t, "GOSUM_K")
	dir := t.TempDir()
	a := filepath.Join(dir, ".env")
	b := filepath.Join(dir, ".env.local")
	if err := os.WriteFile(a, []byte("GOSUM_K=first\n"), 0o600); err != nil {
		t.Fatalf("write a: %v", err)
	}
	if err := os.WriteFile(b, []byte("GOSUM_K=second\n"), 0o600); err != nil {
		t.Fatalf("write b: %v", err)
	}
	if err := LoadEnvFiles(a, b, filepath.Join(dir, "missing")); err != nil {
		t.Fatalf("LoadEnvFiles error: %v", err)
	}
	if got := os.Getenv("GOSUM_K"); got != "second" {
		t.Fatalf("override order failed: got %q, want second", got)
	}
}

func TestLoadEnvFiles_ProcessEnvWins(t *testing.T) {
	t.Setenv("GOSUM_PRESET", "from-process")
	dir := t.TempDir()
	p := filepath.Join(dir, ".env")
	if err := os.WriteFile(p, []byte("GOSUM_PRESET=from-file\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := LoadEnvFiles(p); err != nil {
		t.Fatalf("LoadEnvFiles error: %v", err)
	}
	if got := os.Getenv("GOSUM_PRESET"); got != "from-process" {
		t.Fatalf("process env replaced: %q", got)
	}
}
