package Controllers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yeremiapane/restofood-client/auth"
	"github.com/yeremiapane/restofood-client/gateway"
	"github.com/yeremiapane/restofood-client/session"
	"github.com/yeremiapane/restofood-client/stubserver"
	"github.com/yeremiapane/restofood-client/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var dbSeq int64

// setupStub menjalankan stub backend di atas sqlite in-memory dan merakit
// seluruh dependensi klien terhadapnya.
type stubEnv struct {
	DB    *gorm.DB
	API   *gateway.Client
	Store *session.Store
	Auth  *auth.Controller
}

func setupStub(t *testing.T) *stubEnv {
	t.Helper()

	// Nama database unik per test; sqlite ":memory:" polos memberi database
	// berbeda untuk tiap koneksi di pool.
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, atomic.AddInt64(&dbSeq, 1))
	db, err := stubserver.Open(dsn)
	require.NoError(t, err)

	srv := httptest.NewServer(stubserver.NewRouter(db))
	t.Cleanup(srv.Close)

	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	api := gateway.NewClient(srv.URL+"/api", nil)
	return &stubEnv{
		DB:    db,
		API:   api,
		Store: store,
		Auth:  auth.NewController(store, api),
	}
}

// loginAs mendaftarkan akun baru lewat API lalu menyimpan sesinya, persis
// jalur yang dilalui aplikasi sungguhan.
func (e *stubEnv) loginAs(t *testing.T, role string) {
	t.Helper()

	email := fmt.Sprintf("%s@example.com", role)
	err := e.Auth.Register(context.Background(), "Test "+role, email, "rahasia1", role)
	require.NoError(t, err)
}

func (e *stubEnv) seedRestaurants(t *testing.T) []stubserver.Restaurant {
	t.Helper()

	restaurants := []stubserver.Restaurant{
		{
			Name: "Warung Nasi Uduk Bu Siti", Address: "Jl. Kebon Jeruk No. 12",
			Latitude: -6.19, Longitude: 106.78, Category: "Indonesian",
			OpeningHours: "07:00-21:00",
			Menus: []stubserver.Menu{
				{Name: "Nasi Uduk Komplit", Price: 25000},
				{Name: "Es Teh Manis", Price: 5000},
			},
		},
		{
			Name: "Bakso Pak Kumis", Address: "Jl. Sudirman No. 45",
			Latitude: -6.21, Longitude: 106.82, Category: "Street Food",
		},
		{
			Name: "Sushi Hana", Address: "Jl. Senopati No. 8",
			Latitude: -6.23, Longitude: 106.81, Category: "Japanese",
		},
	}
	for i := range restaurants {
		require.NoError(t, e.DB.Create(&restaurants[i]).Error)
	}
	return restaurants
}

// gatedServer adalah server HTTP yang menahan respons sampai dilepas; untuk
// menguji perilaku layar selama request masih menggantung.
func gatedServer(t *testing.T, body string) (*gateway.Client, chan struct{}) {
	t.Helper()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte(body))
	}))
	t.Cleanup(func() {
		select {
		case <-release:
		default:
			close(release)
		}
		srv.Close()
	})
	return gateway.NewClient(srv.URL, nil), release
}

func yesConfirmer() controllersConfirmer { return controllersConfirmer(true) }
func noConfirmer() controllersConfirmer  { return controllersConfirmer(false) }

type controllersConfirmer bool

func (c controllersConfirmer) Confirm(string) bool { return bool(c) }
