package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedMimeType(t *testing.T) {
	assert.True(t, AllowedMimeType(CategoryLogos, "image/png"))
	assert.True(t, AllowedMimeType(CategoryImages, "IMAGE/JPEG"))
	assert.True(t, AllowedMimeType(CategoryImages, "image/webp; charset=binary"))
	assert.True(t, AllowedMimeType(CategoryDocuments, "application/pdf"))
	assert.True(t, AllowedMimeType(CategoryVideos, "video/mp4"))

	assert.False(t, AllowedMimeType(CategoryDocuments, "application/x-msdownload"))
	assert.False(t, AllowedMimeType(CategoryImages, "text/html"))
	assert.False(t, AllowedMimeType("unknown", "image/png"))
}

func TestObjectKey(t *testing.T) {
	key := ObjectKey("user-1", CategoryDocuments, "Pitch Deck.PDF")

	assert.True(t, strings.HasPrefix(key, "user-1/documents/"), "key %q", key)
	assert.True(t, strings.HasSuffix(key, ".pdf"), "key %q", key)

	// Extension-less names get a fallback, and keys never collide.
	other := ObjectKey("user-1", CategoryDocuments, "README")
	assert.True(t, strings.HasSuffix(other, ".bin"), "key %q", other)
	assert.NotEqual(t, key, ObjectKey("user-1", CategoryDocuments, "Pitch Deck.PDF"))
}

func TestPublicURLRoundTrip(t *testing.T) {
	c := New(nil, "launchpad-media", "https://media.launchpad.example/")

	url := c.PublicURL("user-1/logos/123-abc.png")
	assert.Equal(t, "https://media.launchpad.example/user-1/logos/123-abc.png", url)

	assert.Equal(t, "user-1/logos/123-abc.png", c.KeyFromURL(url))
	assert.Empty(t, c.KeyFromURL("https://elsewhere.example/file.png"))
}
