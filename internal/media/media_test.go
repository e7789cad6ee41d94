package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"logo":        TypeLogo,
		"Logo":        TypeLogo,
		"image":       TypeImage,
		"coverImage":  TypeImage,
		"cover_image": TypeImage,
		"cover":       TypeImage,
		"PitchDeck":   TypeDocument,
		"pitch_deck":  TypeDocument,
		"document":    TypeDocument,
		"video":       TypeVideo,
		"Podcast":     "podcast", // unknown labels pass through lower-cased
	}

	for raw, want := range cases {
		assert.Equal(t, want, Normalize(raw), "Normalize(%q)", raw)
	}
}

func TestAttachImageIsIdempotent(t *testing.T) {
	set := Set{}

	set, err := Attach(set, TypeImage, "image", "https://x/a.png")
	require.NoError(t, err)

	set, err = Attach(set, TypeImage, "image", "https://x/a.png")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://x/a.png"}, set.Images)
}

func TestAttachLogoMirrorsIntoImages(t *testing.T) {
	set, err := Attach(Set{}, TypeLogo, "logo", "https://x/logo.png")
	require.NoError(t, err)

	require.NotNil(t, set.LogoURL)
	assert.Equal(t, "https://x/logo.png", *set.LogoURL)
	assert.Equal(t, []string{"https://x/logo.png"}, set.Images)

	// A second logo replaces the pointer but both URLs stay in images.
	set, err = Attach(set, TypeLogo, "logo", "https://x/logo2.png")
	require.NoError(t, err)
	assert.Equal(t, "https://x/logo2.png", *set.LogoURL)
	assert.Equal(t, []string{"https://x/logo.png", "https://x/logo2.png"}, set.Images)
}

func TestAttachFirstDocumentBecomesPitchDeck(t *testing.T) {
	set, err := Attach(Set{}, TypeDocument, "document", "https://x/one.pdf")
	require.NoError(t, err)

	require.NotNil(t, set.PitchDeckURL)
	assert.Equal(t, "https://x/one.pdf", *set.PitchDeckURL)

	// A later plain document does not steal the pointer.
	set, err = Attach(set, TypeDocument, "document", "https://x/two.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://x/one.pdf", *set.PitchDeckURL)

	// But a pitch-labelled one does.
	set, err = Attach(set, TypeDocument, "pitchDeck", "https://x/deck.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://x/deck.pdf", *set.PitchDeckURL)
	assert.Equal(t, []string{"https://x/one.pdf", "https://x/two.pdf", "https://x/deck.pdf"}, set.Documents)
}

func TestAttachUnknownTypeRejected(t *testing.T) {
	_, err := Attach(Set{}, "podcast", "podcast", "https://x/a.mp3")
	require.Error(t, err)
}

func TestDetachDocumentRoundTrip(t *testing.T) {
	set, err := Attach(Set{}, TypeDocument, "pitch_deck", "https://x/deck.pdf")
	require.NoError(t, err)

	set, err = Detach(set, TypeDocument, "https://x/deck.pdf")
	require.NoError(t, err)

	assert.NotContains(t, set.Documents, "https://x/deck.pdf")
	assert.Nil(t, set.PitchDeckURL)
}

func TestDetachPitchDeckDoesNotPromote(t *testing.T) {
	set := Set{}
	var err error

	set, _ = Attach(set, TypeDocument, "pitchDeck", "https://x/deck.pdf")
	set, _ = Attach(set, TypeDocument, "document", "https://x/other.pdf")

	set, err = Detach(set, TypeDocument, "https://x/deck.pdf")
	require.NoError(t, err)

	// Remaining documents survive; no new pitch deck is designated.
	assert.Equal(t, []string{"https://x/other.pdf"}, set.Documents)
	assert.Nil(t, set.PitchDeckURL)
}

func TestDetachLogoNullsPointerAndRemovesMirror(t *testing.T) {
	set, _ := Attach(Set{}, TypeLogo, "logo", "https://x/logo.png")

	set, err := Detach(set, TypeLogo, "https://x/logo.png")
	require.NoError(t, err)

	assert.Nil(t, set.LogoURL)
	assert.Empty(t, set.Images)
}

func TestDetachImageKeepsUnrelatedLogo(t *testing.T) {
	set, _ := Attach(Set{}, TypeLogo, "logo", "https://x/logo.png")
	set, _ = Attach(set, TypeImage, "image", "https://x/banner.png")

	set, err := Detach(set, TypeImage, "https://x/banner.png")
	require.NoError(t, err)

	require.NotNil(t, set.LogoURL)
	assert.Equal(t, []string{"https://x/logo.png"}, set.Images)
}

func TestColumnsNeverNullArrays(t *testing.T) {
	cols := Columns(Set{})

	assert.Equal(t, []string{}, cols["media_images"])
	assert.Equal(t, []string{}, cols["media_documents"])
	assert.Equal(t, []string{}, cols["media_videos"])
	assert.Nil(t, cols["logo_url"])
	assert.Nil(t, cols["pitch_deck_url"])
}
