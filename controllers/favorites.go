package controllers

import (
	"net/http"

	"github.com/yeremiapane/restofood-client/auth"
	"github.com/yeremiapane/restofood-client/gateway"
	"github.com/yeremiapane/restofood-client/models"
	"github.com/yeremiapane/restofood-client/session"
)

// FavoritesController adalah layar daftar restoran favorit milik user.
type FavoritesController struct {
	screen
	favorites []models.Favorite
}

func NewFavoritesController(api *gateway.Client, store *session.Store, authc *auth.Controller) *FavoritesController {
	return &FavoritesController{screen: newScreen(api, store, authc)}
}

func (f *FavoritesController) Refresh() error {
	if err := f.begin(); err != nil {
		return err
	}
	defer f.finish()

	tok, err := f.token("Sesi tidak valid. Silakan login kembali.")
	if err != nil {
		return err
	}

	var list []models.Favorite
	if err := f.api.Do(f.ctx, http.MethodGet, "/favorites", nil, &list, tok); err != nil {
		f.fail(err, "", "Gagal memuat favorit")
		return err
	}

	f.commit(func() { f.favorites = list })
	return nil
}

func (f *FavoritesController) Favorites() []models.Favorite {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Favorite, len(f.favorites))
	copy(out, f.favorites)
	return out
}
