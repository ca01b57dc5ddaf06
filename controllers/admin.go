package controllers

import (
	"fmt"
	"net/http"

	"github.com/yeremiapane/restofood-client/auth"
	"github.com/yeremiapane/restofood-client/gateway"
	"github.com/yeremiapane/restofood-client/models"
	"github.com/yeremiapane/restofood-client/session"
)

// RestaurantInput adalah isi form tambah/ubah restoran.
type RestaurantInput struct {
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Category     string  `json:"category,omitempty"`
	OpeningHours string  `json:"opening_hours,omitempty"`
}

func (in RestaurantInput) validate() error {
	if in.Name == "" || in.Address == "" {
		return &gateway.ValidationError{Message: "Please fill in all required fields"}
	}
	if in.Latitude < -90 || in.Latitude > 90 || in.Longitude < -180 || in.Longitude > 180 {
		return &gateway.ValidationError{Message: "Invalid latitude (-90 to 90) or longitude (-180 to 180)"}
	}
	return nil
}

// AdminController adalah dashboard admin: daftar semua restoran plus mutasi
// create/update/delete. Mutasi bersifat fire-and-confirm; daftar lokal baru
// disentuh setelah server mengonfirmasi, dan direkonsiliasi di tempat alih-
// alih fetch ulang.
type AdminController struct {
	screen
	confirm     Confirmer
	restaurants []models.Restaurant
}

func NewAdminController(api *gateway.Client, store *session.Store, authc *auth.Controller, confirm Confirmer) *AdminController {
	return &AdminController{screen: newScreen(api, store, authc), confirm: confirm}
}

// Refresh mengambil semua restoran tanpa koordinat; dashboard admin tidak
// peduli jarak.
func (a *AdminController) Refresh() error {
	if err := a.begin(); err != nil {
		return err
	}
	defer a.finish()

	tok, err := a.token("Invalid session")
	if err != nil {
		return err
	}

	var list []models.Restaurant
	if err := a.api.Do(a.ctx, http.MethodGet, "/restaurants", nil, &list, tok); err != nil {
		a.fail(err, "Session expired", "Failed to load restaurants")
		return err
	}

	a.commit(func() { a.restaurants = list })
	return nil
}

// Create menambahkan restoran baru; hasil konfirmasi server di-append ke
// daftar lokal.
func (a *AdminController) Create(in RestaurantInput) error {
	if err := in.validate(); err != nil {
		a.setError(err.Error())
		return err
	}
	if err := a.begin(); err != nil {
		return err
	}
	defer a.finish()

	tok, err := a.token("Invalid session")
	if err != nil {
		return err
	}

	var created models.Restaurant
	if err := a.api.Do(a.ctx, http.MethodPost, "/restaurants", in, &created, tok); err != nil {
		a.fail(err, "Session expired", "Failed to add restaurant")
		return err
	}

	a.commit(func() { a.restaurants = append(a.restaurants, created) })
	return nil
}

// Update mengganti restoran dengan id yang sama memakai versi hasil
// konfirmasi server.
func (a *AdminController) Update(id uint, in RestaurantInput) error {
	if err := in.validate(); err != nil {
		a.setError(err.Error())
		return err
	}
	if err := a.begin(); err != nil {
		return err
	}
	defer a.finish()

	tok, err := a.token("Invalid session")
	if err != nil {
		return err
	}

	var updated models.Restaurant
	path := fmt.Sprintf("/restaurants/%d", id)
	if err := a.api.Do(a.ctx, http.MethodPut, path, in, &updated, tok); err != nil {
		a.fail(err, "Session expired", "Failed to update restaurant")
		return err
	}

	a.commit(func() {
		for i := range a.restaurants {
			if a.restaurants[i].ID == id {
				a.restaurants[i] = updated
			}
		}
	})
	return nil
}

// Delete meminta konfirmasi user dulu; batal berarti tidak ada request sama
// sekali. Setelah server mengonfirmasi, tepat satu entri dengan id tersebut
// dibuang dari daftar lokal.
func (a *AdminController) Delete(id uint) error {
	if !a.confirm.Confirm("Are you sure you want to delete this restaurant?") {
		return nil
	}
	if err := a.begin(); err != nil {
		return err
	}
	defer a.finish()

	tok, err := a.token("Invalid session")
	if err != nil {
		return err
	}

	path := fmt.Sprintf("/restaurants/%d", id)
	if err := a.api.Do(a.ctx, http.MethodDelete, path, nil, nil, tok); err != nil {
		a.fail(err, "Session expired", "Failed to delete restaurant")
		return err
	}

	a.commit(func() {
		keep := a.restaurants[:0]
		for _, r := range a.restaurants {
			if r.ID != id {
				keep = append(keep, r)
			}
		}
		a.restaurants = keep
	})
	return nil
}

func (a *AdminController) Restaurants() []models.Restaurant {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]models.Restaurant, len(a.restaurants))
	copy(out, a.restaurants)
	return out
}

// Actions menghitung kapabilitas item daftar dari role sesi saat ini.
func (a *AdminController) Actions() Actions {
	return ActionsForRole(a.store.Get().Role)
}
