// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"context"
	"fmt"
	"strings"
)

// Make normalizes a display name into a slug: lowercase letters, digits, and
// hyphens survive; spaces become hyphens; everything else is dropped. Runs of
// hyphens collapse and leading/trailing hyphens are trimmed.
func Make(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}

	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}

	return strings.Trim(slug, "-")
}

// TakenFunc reports whether a slug is already in use.
type TakenFunc func(ctx context.Context, slug string) (bool, error)

// Unique probes name's slug against the datastore, suffixing -2, -3, ... on
// collision until a free slug is found.
func Unique(ctx context.Context, name string, taken TakenFunc) (string, error) {
	base := Make(name)
	if base == "" {
		base = "startup"
	}

	candidate := base
	for i := 2; ; i++ {
		inUse, err := taken(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if !inUse {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
