package cli

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/socialsched/socialsched/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestPlatformChoices(t *testing.T) {
	t.Parallel()

	require.Equal(t, "instagram/twitter/facebook/linkedin", platformChoices())
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "LinkedIn", displayName(domain.PlatformLinkedIn))
	require.Equal(t, "myspace", displayName(domain.Platform("myspace")))
}

func TestTruncateCutsOnRuneBoundary(t *testing.T) {
	t.Parallel()

	require.Equal(t, "héllo", truncate("héllo", 10))

	out := truncate(strings.Repeat("é", 50), 10)
	require.True(t, utf8.ValidString(out))
	require.Equal(t, 10, utf8.RuneCountInString(out))
	require.Equal(t, strings.Repeat("é", 9)+"…", out)
}
