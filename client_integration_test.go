package main

import (
	"context"
	"log"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeremiapane/restofood-client/auth"
	"github.com/yeremiapane/restofood-client/controllers"
	"github.com/yeremiapane/restofood-client/gateway"
	"github.com/yeremiapane/restofood-client/geo"
	"github.com/yeremiapane/restofood-client/session"
	"github.com/yeremiapane/restofood-client/stubserver"
	"github.com/yeremiapane/restofood-client/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// TestEndToEndIntegration menguji flow utama klien:
// 0. Seed user admin & restoran di database stub
// 1. Login -> token + role tersimpan, kapabilitas admin aktif
// 2. Home refresh -> daftar restoran terisi
// 3. Token kedaluwarsa -> storage dibersihkan, state logged-out, daftar kosong
func TestEndToEndIntegration(t *testing.T) {
	db := setupClientTestDB(t)
	srv := httptest.NewServer(stubserver.NewRouter(db))
	defer srv.Close()

	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	api := gateway.NewClient(srv.URL+"/api", nil)
	authc := auth.NewController(store, api)
	jakarta := geo.FixedProvider{Coordinates: geo.Coordinates{Latitude: -6.2, Longitude: 106.816666}}

	// 1. Login
	loginClientTest(t, authc, store)

	// 2. Home refresh
	home := controllers.NewHomeController(api, store, authc, jakarta)
	defer home.Close()
	if err := home.Refresh(); err != nil {
		t.Fatalf("home refresh: %v", err)
	}
	if got := len(home.Restaurants()); got != 2 {
		t.Fatalf("expected 2 restaurants after refresh, got %d", got)
	}

	// 3. Expired token
	expiredSessionTest(t, api, store, authc, jakarta)
}

func setupClientTestDB(t *testing.T) *gorm.DB {
	// Nama shared-cache unik; ":memory:" polos memberi DB terpisah per koneksi.
	db, err := stubserver.Open("file:client_integration?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	db.Create(&stubserver.User{
		Name:     "Test Admin",
		Email:    "admin@example.com",
		Password: string(hashedPassword),
		Role:     "admin",
	})

	db.Create(&stubserver.Restaurant{
		Name: "Warung Tegal Bahari", Address: "Jl. Fatmawati No. 3",
		Latitude: -6.29, Longitude: 106.79, Category: "Indonesian",
		Menus: []stubserver.Menu{{Name: "Nasi Rames", Price: 15000}},
	})
	db.Create(&stubserver.Restaurant{
		Name: "Kedai Kopi Tjap Naga", Address: "Jl. Pecenongan No. 21",
		Latitude: -6.16, Longitude: 106.83, Category: "Cafe",
	})

	return db
}

func loginClientTest(t *testing.T, authc *auth.Controller, store *session.Store) {
	if err := authc.Login(context.Background(), "admin@example.com", "secret123"); err != nil {
		t.Fatalf("loginClientTest fail: %v", err)
	}

	sess := store.Get()
	log.Printf("Login stored session: role=%s", sess.Role)
	if sess.Token == "" {
		t.Fatalf("loginClientTest: token empty after login")
	}
	if sess.Role != "admin" {
		t.Fatalf("loginClientTest: expected role admin, got %q", sess.Role)
	}

	state, role := authc.Status()
	if state != auth.StateLoggedIn || role != "admin" {
		t.Fatalf("loginClientTest: state=%v role=%q", state, role)
	}
	if !controllers.ActionsForRole(role).Can(controllers.ActionEdit) {
		t.Fatalf("loginClientTest: admin must have edit capability")
	}
}

// expiredSessionTest -> token rusak => refresh gagal, storage bersih,
// state logged-out, daftar tetap kosong
func expiredSessionTest(t *testing.T, api *gateway.Client, store *session.Store, authc *auth.Controller, location geo.FixedProvider) {
	if err := store.Set("tampered-token", "admin"); err != nil {
		t.Fatalf("expiredSessionTest: seed token: %v", err)
	}

	home := controllers.NewHomeController(api, store, authc, location)
	defer home.Close()

	err := home.Refresh()
	if err == nil {
		t.Fatalf("expiredSessionTest: expected refresh to fail")
	}
	if msg := home.ErrorMessage(); msg != "Session expired" {
		t.Fatalf("expiredSessionTest: want 'Session expired', got %q", msg)
	}
	if got := len(home.Restaurants()); got != 0 {
		t.Fatalf("expiredSessionTest: expected empty list, got %d", got)
	}

	if sess := store.Get(); sess.IsLoggedIn() {
		t.Fatalf("expiredSessionTest: storage should be cleared, still has %q", sess.Token)
	}
	if state, _ := authc.Status(); state != auth.StateLoggedOut {
		t.Fatalf("expiredSessionTest: expected logged-out, got %v", state)
	}
}
