package controllers

import (
	"fmt"
	"net/http"

	"github.com/yeremiapane/restofood-client/auth"
	"github.com/yeremiapane/restofood-client/gateway"
	"github.com/yeremiapane/restofood-client/models"
	"github.com/yeremiapane/restofood-client/session"
)

// DetailController adalah layar detail satu restoran: cek status favorit lalu
// toggle. Id record favorit disimpan dari hasil cek/pembuatan supaya
// penghapusan memakai id favorit, bukan id restoran.
type DetailController struct {
	screen
	restaurant models.Restaurant

	isFavorite bool
	favoriteID uint
}

func NewDetailController(api *gateway.Client, store *session.Store, authc *auth.Controller, restaurant models.Restaurant) *DetailController {
	return &DetailController{screen: newScreen(api, store, authc), restaurant: restaurant}
}

func (d *DetailController) Restaurant() models.Restaurant {
	return d.restaurant
}

// CheckFavorite menanyakan ke server apakah restoran ini sudah difavoritkan.
func (d *DetailController) CheckFavorite() error {
	if err := d.begin(); err != nil {
		return err
	}
	defer d.finish()

	tok, err := d.token("Sesi tidak valid")
	if err != nil {
		return err
	}

	var list []models.Favorite
	path := fmt.Sprintf("/favorites?restaurant_id=%d", d.restaurant.ID)
	if err := d.api.Do(d.ctx, http.MethodGet, path, nil, &list, tok); err != nil {
		d.fail(err, "", "Gagal memeriksa status favorit")
		return err
	}

	d.commit(func() {
		d.isFavorite = len(list) > 0
		if d.isFavorite {
			d.favoriteID = list[0].ID
		} else {
			d.favoriteID = 0
		}
	})
	return nil
}

// ToggleFavorite menambah atau menghapus favorit; state lokal baru berubah
// setelah server mengonfirmasi. Dua kali toggle berurutan mengembalikan
// status ke nilai semula.
func (d *DetailController) ToggleFavorite() error {
	if err := d.begin(); err != nil {
		return err
	}
	defer d.finish()

	tok, err := d.token("Sesi tidak valid")
	if err != nil {
		return err
	}

	if d.isFavorite {
		path := fmt.Sprintf("/favorites/%d", d.favoriteID)
		if err := d.api.Do(d.ctx, http.MethodDelete, path, nil, nil, tok); err != nil {
			d.fail(err, "", "Gagal mengubah status favorit")
			return err
		}
		d.commit(func() {
			d.isFavorite = false
			d.favoriteID = 0
		})
		return nil
	}

	var created models.Favorite
	body := map[string]uint{"restaurant_id": d.restaurant.ID}
	if err := d.api.Do(d.ctx, http.MethodPost, "/favorites", body, &created, tok); err != nil {
		d.fail(err, "", "Gagal mengubah status favorit")
		return err
	}
	d.commit(func() {
		d.isFavorite = true
		d.favoriteID = created.ID
	})
	return nil
}

func (d *DetailController) IsFavorite() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.isFavorite
}
