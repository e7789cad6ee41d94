// Package media keeps the denormalized media columns on a startup row
// consistent: three array columns (images, documents, videos) plus two
// singleton pointers (logo_url, pitch_deck_url). Attach and Detach compute
// the full post-state so the store can persist it in a single UPDATE.
package media

import (
	"strings"

	"launchpad/internal/apperror"
)

// Canonical media types.
const (
	TypeLogo     = "logo"
	TypeImage    = "image"
	TypeDocument = "document"
	TypeVideo    = "video"
)

// Normalize maps a free-form media-type label onto the canonical set.
// Unknown labels pass through lower-cased rather than being rejected, so
// callers see their own vocabulary in error messages.
func Normalize(rawType string) string {
	switch strings.ToLower(strings.TrimSpace(rawType)) {
	case "logo":
		return TypeLogo
	case "image", "coverimage", "cover_image", "cover":
		return TypeImage
	case "document", "pitchdeck", "pitch_deck":
		return TypeDocument
	case "video":
		return TypeVideo
	default:
		return strings.ToLower(strings.TrimSpace(rawType))
	}
}

// Set is the media state of one startup row.
type Set struct {
	LogoURL      *string
	PitchDeckURL *string
	Images       []string
	Documents    []string
	Videos       []string
}

// Attach adds url under the canonical type, returning the updated set.
// Duplicate appends are no-ops: every URL appears at most once per array.
// Attaching a logo also mirrors the URL into Images. The first document, or
// any document whose raw label mentions "pitch", becomes the pitch deck.
func Attach(set Set, canonicalType, rawLabel, url string) (Set, error) {
	switch canonicalType {
	case TypeLogo:
		set.LogoURL = &url
		set.Images = appendUnique(set.Images, url)
	case TypeImage:
		set.Images = appendUnique(set.Images, url)
	case TypeDocument:
		wasEmpty := len(set.Documents) == 0
		set.Documents = appendUnique(set.Documents, url)
		if wasEmpty || strings.Contains(strings.ToLower(rawLabel), "pitch") {
			set.PitchDeckURL = &url
		}
	case TypeVideo:
		set.Videos = appendUnique(set.Videos, url)
	default:
		return set, apperror.Validation("mediaType", "invalid media type: "+canonicalType)
	}

	return set, nil
}

// Detach removes url from the arrays the canonical type maps onto and nulls
// any pointer equal to it. Removing the designated pitch deck does not
// promote another document. Logo and image detach share the images array.
func Detach(set Set, canonicalType, url string) (Set, error) {
	switch canonicalType {
	case TypeLogo, TypeImage:
		set.Images = removeAll(set.Images, url)
		if set.LogoURL != nil && *set.LogoURL == url {
			set.LogoURL = nil
		}
	case TypeDocument:
		set.Documents = removeAll(set.Documents, url)
		if set.PitchDeckURL != nil && *set.PitchDeckURL == url {
			set.PitchDeckURL = nil
		}
	case TypeVideo:
		set.Videos = removeAll(set.Videos, url)
	default:
		return set, apperror.Validation("mediaType", "invalid media type: "+canonicalType)
	}

	return set, nil
}

// Columns returns the set as a column map for a single-row UPDATE.
func Columns(set Set) map[string]any {
	return map[string]any{
		"logo_url":        set.LogoURL,
		"pitch_deck_url":  set.PitchDeckURL,
		"media_images":    emptyNotNil(set.Images),
		"media_documents": emptyNotNil(set.Documents),
		"media_videos":    emptyNotNil(set.Videos),
	}
}

func appendUnique(urls []string, url string) []string {
	for _, existing := range urls {
		if existing == url {
			return urls
		}
	}

	out := make([]string, 0, len(urls)+1)
	out = append(out, urls...)
	return append(out, url)
}

func removeAll(urls []string, url string) []string {
	out := make([]string, 0, len(urls))
	for _, existing := range urls {
		if existing == url {
			continue
		}
		out = append(out, existing)
	}
	return out
}

// The array columns are NOT NULL; keep them as empty arrays rather than nil
// slices.
func emptyNotNil(urls []string) []string {
	if urls == nil {
		return []string{}
	}
	return urls
}
