// Package provider expands a natural-language prompt into candidate set
// items, either through OpenAI's Chat Completions API or a deterministic
// local fallback, and exposes the result over HTTP for the TUI.
package provider

import (
	"context"

	"github.com/setforge/setforge/internal/config"
	"github.com/setforge/setforge/internal/set"
)

// Source produces candidate items for a prompt. Implementations must honor
// ctx cancellation and return items already normalized and deduplicated.
type Source interface {
	Items(ctx context.Context, prompt string) ([]string, error)
}

// NewSource selects the language-model source when an API key is configured
// and the local fallback otherwise.
func NewSource(cfg *config.Config) Source {
	if cfg != nil && cfg.OpenAI.APIKey != "" {
		return newOpenAISource(cfg.OpenAI)
	}
	return fallbackSource{}
}

// cleanItems normalizes every item and removes duplicates (case-sensitive),
// preserving first-seen order. Every source response passes through here
// before leaving the backend.
func cleanItems(items []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(items))
	for _, item := range items {
		v := set.Normalize(item)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
