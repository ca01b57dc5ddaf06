package controllers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/yeremiapane/restofood-client/auth"
	"github.com/yeremiapane/restofood-client/gateway"
	"github.com/yeremiapane/restofood-client/geo"
	"github.com/yeremiapane/restofood-client/models"
	"github.com/yeremiapane/restofood-client/session"
)

// HomeController adalah layar utama: ambil restoran terdekat berdasarkan
// lokasi perangkat, lalu saring di sisi klien dengan kata kunci nama dan
// kategori. Filter tidak pernah dikirim ke server; hanya fetch awal yang
// berparameter lat/lon.
type HomeController struct {
	screen
	location geo.Provider

	restaurants []models.Restaurant
	filtered    []models.Restaurant
	categories  []string
	query       string
	category    string
}

func NewHomeController(api *gateway.Client, store *session.Store, authc *auth.Controller, location geo.Provider) *HomeController {
	return &HomeController{screen: newScreen(api, store, authc), location: location}
}

// Refresh mengganti seluruh koleksi dengan hasil fetch baru; tidak pernah
// merge dengan state lama. Penolakan izin lokasi tampil sebagai error layar
// dan tidak dicoba ulang.
func (h *HomeController) Refresh() error {
	if err := h.begin(); err != nil {
		return err
	}
	defer h.finish()

	coords, err := h.location.Current(h.ctx)
	if err != nil {
		h.setError(err.Error())
		return err
	}

	tok, err := h.token("Invalid session")
	if err != nil {
		return err
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))

	var list []models.Restaurant
	if err := h.api.Do(h.ctx, http.MethodGet, "/restaurants?"+q.Encode(), nil, &list, tok); err != nil {
		h.fail(err, "Session expired", "Failed to load restaurants")
		return err
	}

	h.commit(func() {
		h.restaurants = list
		h.categories = uniqueCategories(list)
		h.applyFilter()
	})
	return nil
}

// SetQuery menyaring ulang dari koleksi penuh dengan substring nama,
// case-insensitive. Query kosong mengembalikan semua.
func (h *HomeController) SetQuery(query string) {
	h.commit(func() {
		h.query = query
		h.applyFilter()
	})
}

// SetCategory menyaring dengan kecocokan kategori persis; kosong berarti
// semua kategori.
func (h *HomeController) SetCategory(category string) {
	h.commit(func() {
		h.category = category
		h.applyFilter()
	})
}

// applyFilter diturunkan ulang dari koleksi penuh setiap kali query atau
// kategori berubah. Dipanggil dengan lock terpegang.
func (h *HomeController) applyFilter() {
	filtered := h.restaurants
	if h.query != "" {
		q := strings.ToLower(h.query)
		var keep []models.Restaurant
		for _, r := range filtered {
			if strings.Contains(strings.ToLower(r.Name), q) {
				keep = append(keep, r)
			}
		}
		filtered = keep
	}
	if h.category != "" {
		var keep []models.Restaurant
		for _, r := range filtered {
			if r.Category == h.category {
				keep = append(keep, r)
			}
		}
		filtered = keep
	}
	h.filtered = filtered
}

// Restaurants mengembalikan koleksi setelah filter.
func (h *HomeController) Restaurants() []models.Restaurant {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]models.Restaurant, len(h.filtered))
	copy(out, h.filtered)
	return out
}

// Categories adalah daftar kategori unik dari hasil fetch terakhir, urut
// sesuai kemunculan.
func (h *HomeController) Categories() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.categories))
	copy(out, h.categories)
	return out
}

func uniqueCategories(list []models.Restaurant) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range list {
		if r.Category == "" || seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		out = append(out, r.Category)
	}
	return out
}
