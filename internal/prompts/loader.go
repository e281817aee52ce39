// Package prompts builds the per-stage instruction conversations sent
// to the generation gateway. Templates are externalized in an embedded
// JSON file; builders are pure and deterministic, so identical input
// always renders byte-identical instructions.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed posts.json
var promptFiles embed.FS

var (
	cache   map[string]string
	cacheMu sync.Mutex
)

// Get retrieves a prompt template by key from the embedded file.
func Get(key string) (string, error) {
	templates, err := load()
	if err != nil {
		return "", err
	}

	template, exists := templates[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found", key)
	}
	return template, nil
}

// MustGet retrieves a prompt template, panicking if it is missing.
// Every key used by the builders exists at compile time.
func MustGet(key string) string {
	template, err := Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return template
}

// Format replaces {{.Key}} placeholders with values from data.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, fmt.Sprintf("{{.%s}}", key), value)
	}
	return result
}

func load() (map[string]string, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cache != nil {
		return cache, nil
	}

	data, err := promptFiles.ReadFile("posts.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file: %w", err)
	}

	var templates map[string]string
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file: %w", err)
	}

	cache = templates
	return cache, nil
}
