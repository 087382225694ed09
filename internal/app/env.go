package app

import (
	"bufio"
	"errors"
	"os"
	"strings"
)

// DefaultEnvFiles are loaded by the CLI in this order; .env.local wins over .env.
var DefaultEnvFiles = []string{".env", ".env.local"}

// LoadEnvFiles loads one or more dotenv files of KEY=VALUE pairs into the
// process environment. Later files override earlier ones, but variables that
// were already set in the real environment are never replaced. Lines starting
// with '#' and blank lines are ignored, an optional "export " prefix is
// accepted, and values are not expanded.
func LoadEnvFiles(paths ...string) error {
	preset := make(map[string]bool)
	for _, kv := range os.Environ() {
		if eq := strings.IndexByte(kv, '='); eq > 0 {
			preset[kv[:eq]] = true
		}
	}
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		pairs, err := readEnvFile(p)
		if err != nil {
			// Missing files are not fatal; continue to next path
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}
		for _, kv := range pairs {
			if preset[kv[0]] {
				continue
			}
			_ = os.Setenv(kv[0], kv[1])
		}
	}
	return nil
}

func readEnvFile(path string) ([][2]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pairs [][2]string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		eq := strings.IndexByte(line, '=')
		if eq <= 0 {
			// ignore malformed lines silently
			continue
		}
		key := strings.TrimSpace(line[:eq])
		pairs = append(pairs, [2]string{key, unquote(strings.TrimSpace(line[eq+1:]))})
	}
	return pairs, scanner.Err()
}

func unquote(val string) string {
	if len(val) >= 2 {
		if (val[0] == '"' && val[len(val)-1] == '"') || (val[0] == '\'' && val[len(val)-1] == '\'') {
			return val[1 : len(val)-1]
		}
	}
	return val
}
