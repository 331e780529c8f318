package provider

import (
	"context"
	"strings"

	"github.com/setforge/setforge/internal/set"
)

// presetSet pairs a keyword with the canned items returned when the keyword
// appears anywhere in the prompt. Matching walks the table in order so the
// result is deterministic when a prompt mentions several keywords.
type presetSet struct {
	keyword string
	items   []string
}

var presetSets = []presetSet{
	{"ppe", []string{
		"N95 respirator",
		"Face shield",
		"Disposable gloves",
		"Protective gown",
		"Medical goggles",
		"Hand sanitizer",
	}},
	{"first aid", []string{
		"Adhesive bandages",
		"Sterile gauze pads",
		"Medical tape",
		"Antiseptic wipes",
		"Elastic bandage",
		"Tweezers",
	}},
	{"camping", []string{
		"Tent",
		"Sleeping bag",
		"Camping stove",
		"Water purifier",
		"Headlamp",
		"First aid kit",
	}},
}

var placeholderItems = []string{
	"example item",
	"another example item",
	"refine your prompt for better results",
}

// fallbackSource answers prompts without a language model. It matches the
// prompt against the preset tables, then tries splitting the prompt itself on
// newlines and commas, and finally returns a placeholder list.
type fallbackSource struct{}

func (fallbackSource) Items(_ context.Context, prompt string) ([]string, error) {
	lowered := strings.ToLower(prompt)
	for _, preset := range presetSets {
		if strings.Contains(lowered, preset.keyword) {
			return cleanItems(preset.items), nil
		}
	}

	if derived := set.ParseBulk(prompt); len(derived) > 0 {
		return cleanItems(derived), nil
	}

	return cleanItems(placeholderItems), nil
}
