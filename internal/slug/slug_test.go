package slug

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"My App 2.0!", "my-app-20"},
		{"WordPress Blog", "wordpress-blog"},
		{"  spaced   out  ", "spaced-out"},
		{"already-slugged", "already-slugged"},
		{"snake_case_name", "snake-case-name"},
		{"Émoji 🚀 Startup", "moji-startup"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Make(tc.in), "Make(%q)", tc.in)
	}
}

func TestUnique(t *testing.T) {
	existing := map[string]bool{
		"acme":   true,
		"acme-2": true,
	}
	taken := func(_ context.Context, s string) (bool, error) {
		return existing[s], nil
	}

	got, err := Unique(context.Background(), "Acme", taken)
	require.NoError(t, err)
	assert.Equal(t, "acme-3", got)

	got, err = Unique(context.Background(), "Fresh Name", taken)
	require.NoError(t, err)
	assert.Equal(t, "fresh-name", got)
}

func TestUniqueEmptyNameFallsBack(t *testing.T) {
	taken := func(context.Context, string) (bool, error) { return false, nil }

	got, err := Unique(context.Background(), "!!!", taken)
	require.NoError(t, err)
	assert.Equal(t, "startup", got)
}
