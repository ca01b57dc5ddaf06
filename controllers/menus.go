package controllers

import (
	"fmt"
	"net/http"

	"github.com/yeremiapane/restofood-client/auth"
	"github.com/yeremiapane/restofood-client/gateway"
	"github.com/yeremiapane/restofood-client/models"
	"github.com/yeremiapane/restofood-client/session"
)

// MenuInput adalah isi form menu; harga dalam Rupiah utuh.
type MenuInput struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

// MenusController mengelola menu milik satu restoran. Daftar awal diambil
// dari record restoran yang dibawa masuk layar, sama seperti aplikasi
// aslinya; mutasi direkonsiliasi di tempat.
type MenusController struct {
	screen
	confirm      Confirmer
	restaurantID uint
	menus        []models.Menu
}

func NewMenusController(api *gateway.Client, store *session.Store, authc *auth.Controller, confirm Confirmer, restaurant models.Restaurant) *MenusController {
	menus := make([]models.Menu, len(restaurant.Menus))
	copy(menus, restaurant.Menus)
	return &MenusController{
		screen:       newScreen(api, store, authc),
		confirm:      confirm,
		restaurantID: restaurant.ID,
		menus:        menus,
	}
}

// Save membuat menu baru (editID nol) atau memperbarui yang sudah ada.
func (m *MenusController) Save(in MenuInput, editID uint) error {
	if in.Name == "" || in.Price == 0 {
		err := &gateway.ValidationError{Message: "Nama dan harga wajib diisi"}
		m.setError(err.Message)
		return err
	}
	if in.Price < 0 {
		err := &gateway.ValidationError{Message: "Harga harus angka positif"}
		m.setError(err.Message)
		return err
	}
	if err := m.begin(); err != nil {
		return err
	}
	defer m.finish()

	tok, err := m.token("Sesi tidak valid")
	if err != nil {
		return err
	}

	if editID != 0 {
		var updated models.Menu
		path := fmt.Sprintf("/restaurants/%d/menus/%d", m.restaurantID, editID)
		if err := m.api.Do(m.ctx, http.MethodPut, path, in, &updated, tok); err != nil {
			m.fail(err, "Sesi telah berakhir", "Gagal menyimpan menu")
			return err
		}
		m.commit(func() {
			for i := range m.menus {
				if m.menus[i].ID == editID {
					m.menus[i] = updated
				}
			}
		})
		return nil
	}

	var created models.Menu
	path := fmt.Sprintf("/restaurants/%d/menus", m.restaurantID)
	if err := m.api.Do(m.ctx, http.MethodPost, path, in, &created, tok); err != nil {
		m.fail(err, "Sesi telah berakhir", "Gagal menyimpan menu")
		return err
	}
	m.commit(func() { m.menus = append(m.menus, created) })
	return nil
}

// Delete menghapus satu menu setelah user mengonfirmasi.
func (m *MenusController) Delete(menuID uint) error {
	if !m.confirm.Confirm("Apakah Anda yakin ingin menghapus menu ini?") {
		return nil
	}
	if err := m.begin(); err != nil {
		return err
	}
	defer m.finish()

	tok, err := m.token("Sesi tidak valid")
	if err != nil {
		return err
	}

	path := fmt.Sprintf("/restaurants/%d/menus/%d", m.restaurantID, menuID)
	if err := m.api.Do(m.ctx, http.MethodDelete, path, nil, nil, tok); err != nil {
		m.fail(err, "Sesi telah berakhir", "Gagal menghapus menu")
		return err
	}

	m.commit(func() {
		keep := m.menus[:0]
		for _, menu := range m.menus {
			if menu.ID != menuID {
				keep = append(keep, menu)
			}
		}
		m.menus = keep
	})
	return nil
}

func (m *MenusController) Menus() []models.Menu {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Menu, len(m.menus))
	copy(out, m.menus)
	return out
}
