package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/barakahq/supportbot/internal/lang"
)

func TestStoreMintsSessionForUnknownID(t *testing.T) {
	store := NewStore(16, time.Minute)
	state := store.Get("")
	require.NotEmpty(t, state.ID)

	again := store.Get(state.ID)
	require.Equal(t, state.ID, again.ID)
}

func TestStorePersistsPreference(t *testing.T) {
	store := NewStore(16, time.Minute)
	state := store.Get("")
	state.PreferredLang = lang.CodeSwahili
	state.ActiveTicket = 42
	store.Put(state)

	loaded := store.Get(state.ID)
	require.Equal(t, lang.CodeSwahili, loaded.PreferredLang)
	require.Equal(t, int64(42), loaded.ActiveTicket)
}

func TestStoreUnknownIDGetsFreshSession(t *testing.T) {
	store := NewStore(16, time.Minute)
	state := store.Get("expired-or-bogus")
	require.NotEmpty(t, state.ID)
	require.NotEqual(t, "expired-or-bogus", state.ID)
	require.Empty(t, state.PreferredLang)
}
