package auth

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/yeremiapane/restofood-client/gateway"
	"github.com/yeremiapane/restofood-client/models"
	"github.com/yeremiapane/restofood-client/session"
	"github.com/yeremiapane/restofood-client/utils"
)

// State login aplikasi. StateUnknown hanya ada sekali, saat token tersimpan
// masih divalidasi ke backend di awal proses; setelah itu hanya
// LoggedOut/LoggedIn.
type State int

const (
	StateUnknown State = iota
	StateLoggedOut
	StateLoggedIn
)

func (s State) String() string {
	switch s {
	case StateLoggedOut:
		return "logged_out"
	case StateLoggedIn:
		return "logged_in"
	default:
		return "unknown"
	}
}

// Controller memegang siklus hidup sesi: login, register, logout, dan
// validasi token saat start. Role selalu diambil dari respons server, bukan
// dari cache lokal, supaya perubahan role di server langsung terlihat.
type Controller struct {
	mu    sync.Mutex
	store *session.Store
	api   *gateway.Client
	state State
	role  string
}

func NewController(store *session.Store, api *gateway.Client) *Controller {
	return &Controller{store: store, api: api, state: StateUnknown}
}

// Status mengembalikan state saat ini beserta role (kosong jika tidak login).
func (c *Controller) Status() (State, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.role
}

// Bootstrap memvalidasi token tersimpan lewat GET /user. Token ditolak server
// (401) ikut menghapus storage; kegagalan lain dilaporkan sebagai logged-out
// tanpa menyentuh storage karena bisa jadi cuma gangguan sementara.
func (c *Controller) Bootstrap(ctx context.Context) error {
	sess := c.store.Get()
	if !sess.IsLoggedIn() {
		utils.InfoLogger.Println("No token found, user not logged in")
		c.setState(StateLoggedOut, "")
		return nil
	}

	var user models.User
	err := c.api.Do(ctx, http.MethodGet, "/user", nil, &user, sess.Token)
	if err == nil {
		c.setState(StateLoggedIn, user.Role)
		return nil
	}

	if errors.Is(err, gateway.ErrAuthExpired) {
		utils.InfoLogger.Println("Token invalid or expired, clearing storage")
		if clearErr := c.store.Clear(); clearErr != nil {
			utils.ErrorLogger.Printf("Error clearing session: %v", clearErr)
		}
	}
	c.setState(StateLoggedOut, "")
	return err
}

type credentialsRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login memvalidasi field di sisi klien dulu; kalau lolos baru kirim request.
// Session Store terisi sebelum transisi state terlihat oleh pemanggil.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return &ValidationError{Message: "Email and password are required"}
	}
	if err := validateCredentials(email, password); err != nil {
		return err
	}

	var resp authResponse
	req := credentialsRequest{Email: email, Password: password}
	if err := c.api.Do(ctx, http.MethodPost, "/login", req, &resp, ""); err != nil {
		return err
	}

	if err := c.store.Set(resp.Token, resp.User.Role); err != nil {
		return err
	}
	c.setState(StateLoggedIn, resp.User.Role)
	utils.InfoLogger.Printf("Login successful for %s (role=%s)", email, resp.User.Role)
	return nil
}

// Register membuat akun baru lalu langsung login dengan token yang
// dikembalikan. Role kosong didaftarkan sebagai user biasa.
func (c *Controller) Register(ctx context.Context, name, email, password, role string) error {
	if name == "" || email == "" || password == "" {
		return &ValidationError{Message: "All fields are required"}
	}
	if err := validateCredentials(email, password); err != nil {
		return err
	}
	if role == "" {
		role = models.RoleUser
	}

	var resp authResponse
	req := credentialsRequest{Name: name, Email: email, Password: password, Role: role}
	if err := c.api.Do(ctx, http.MethodPost, "/register", req, &resp, ""); err != nil {
		return err
	}

	if err := c.store.Set(resp.Token, resp.User.Role); err != nil {
		return err
	}
	c.setState(StateLoggedIn, resp.User.Role)
	utils.InfoLogger.Printf("New user registered: %s (role=%s)", email, resp.User.Role)
	return nil
}

// Logout menghapus sesi tersimpan; idempoten.
func (c *Controller) Logout() error {
	err := c.store.Clear()
	c.setState(StateLoggedOut, "")
	utils.InfoLogger.Println("Logout successful")
	return err
}

// HandleAuthFailure adalah transisi paksa ke logged-out yang dipanggil layar
// mana pun saat menerima ErrAuthExpired. Aman dipanggil berkali-kali oleh
// beberapa request yang kebetulan sama-sama kena 401.
func (c *Controller) HandleAuthFailure() {
	if err := c.store.Clear(); err != nil {
		utils.ErrorLogger.Printf("Error clearing session: %v", err)
	}
	c.setState(StateLoggedOut, "")
}

func (c *Controller) setState(state State, role string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
	c.role = role
}
