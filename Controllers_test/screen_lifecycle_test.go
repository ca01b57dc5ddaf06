package Controllers_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restofood-client/auth"
	"github.com/yeremiapane/restofood-client/controllers"
	"github.com/yeremiapane/restofood-client/session"
)

func TestRefreshWhileInFlightReturnsBusy(t *testing.T) {
	api, release := gatedServer(t, `[]`)
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Set("token-abc", "user"))

	favs := controllers.NewFavoritesController(api, store, auth.NewController(store, api))
	defer favs.Close()

	done := make(chan error, 1)
	go func() { done <- favs.Refresh() }()
	waitFor(t, favs.Loading)

	assert.ErrorIs(t, favs.Refresh(), controllers.ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, favs.Loading())
}

func TestCloseDropsLateCompletion(t *testing.T) {
	api, release := gatedServer(t, `[{"id":1}]`)
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Set("token-abc", "user"))

	favs := controllers.NewFavoritesController(api, store, auth.NewController(store, api))

	done := make(chan error, 1)
	go func() { done <- favs.Refresh() }()
	waitFor(t, favs.Loading)

	favs.Close()
	close(release)
	require.Error(t, <-done)

	// Layar sudah mati; hasil yang datang terlambat tidak menulis apa pun.
	assert.Empty(t, favs.Favorites())
	assert.Empty(t, favs.ErrorMessage())
}

func TestOperationAfterCloseReturnsClosed(t *testing.T) {
	api, _ := gatedServer(t, `[]`)
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Set("token-abc", "user"))

	favs := controllers.NewFavoritesController(api, store, auth.NewController(store, api))
	favs.Close()

	assert.ErrorIs(t, favs.Refresh(), controllers.ErrClosed)
}
