package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntries_Catalog(t *testing.T) {
	entries := Entries()
	require.Len(t, entries, 4)

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"feed", "blacklist", "whitelist", "profile"}, keys)

	assert.False(t, entries[0].RequiresAuth)
	assert.True(t, entries[1].RequiresAuth)
	assert.True(t, entries[2].RequiresAuth)
	assert.True(t, entries[3].RequiresAuth)
}

func TestVisible_Authenticated_ShowsEverything(t *testing.T) {
	assert.Len(t, Visible(true), 4)
}

func TestVisible_Anonymous_HidesOnlyProfile(t *testing.T) {
	visible := Visible(false)
	require.Len(t, visible, 3)
	for _, e := range visible {
		assert.NotEqual(t, KeyProfile, e.Key)
	}
	// Auth-required entries other than profile remain visible.
	assert.Equal(t, "blacklist", visible[1].Key)
	assert.Equal(t, "whitelist", visible[2].Key)
}

func TestNeedsAuthWarning(t *testing.T) {
	// Anonymous on an auth-required route.
	assert.True(t, NeedsAuthWarning(false, "/profile"))
	assert.True(t, NeedsAuthWarning(false, "/blacklist"))
	assert.True(t, NeedsAuthWarning(false, "/whitelist"))

	// Anonymous on open or unknown routes.
	assert.False(t, NeedsAuthWarning(false, "/feed"))
	assert.False(t, NeedsAuthWarning(false, "/"))
	assert.False(t, NeedsAuthWarning(false, "/nope"))

	// Authenticated never warns.
	assert.False(t, NeedsAuthWarning(true, "/profile"))
	assert.False(t, NeedsAuthWarning(true, "/feed"))
}
