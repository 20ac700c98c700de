package services

import (
	"strings"
	"testing"

	"github.com/gosimple/slug"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomAlias(t *testing.T) {
	for i := 0; i < 100; i++ {
		alias := GenerateRandomAlias()

		parts := strings.SplitN(alias, " ", 2)
		require.Len(t, parts, 2)
		require.Contains(t, aliasAdjectives, parts[0])
		require.Contains(t, aliasNouns, parts[1])
	}
}

func TestAliasHandleShape(t *testing.T) {
	require.Equal(t, "chubby-pickle", slug.Make("Chubby Pickle"))
	require.Equal(t, "certified-capybara", slug.Make("Certified Capybara"))
}
