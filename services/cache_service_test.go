package services

import (
	"fmt"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentEntriesKeyMatchesInvalidationPattern(t *testing.T) {
	for _, key := range []string{"about_text", "hero_image"} {
		cacheKey := contentEntriesKey(key)
		assert.Equal(t, fmt.Sprintf("content:%s:entries", key), cacheKey)

		// InvalidateContentCache clears "content:<key>:*"; the entries key
		// must fall under it or admin saves leave stale content behind.
		matched, err := path.Match(fmt.Sprintf("content:%s:*", key), cacheKey)
		require.NoError(t, err)
		assert.True(t, matched, "key %s", cacheKey)
	}
}
