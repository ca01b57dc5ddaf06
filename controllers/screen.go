package controllers

import (
	"context"
	"errors"
	"sync"

	"github.com/yeremiapane/restofood-client/auth"
	"github.com/yeremiapane/restofood-client/gateway"
	"github.com/yeremiapane/restofood-client/session"
)

// ErrBusy dikembalikan saat operasi dipicu sementara request lain masih jalan;
// padanan tombol yang dinonaktifkan selama loading.
var ErrBusy = errors.New("operation already in progress")

// ErrClosed dikembalikan setelah layar ditutup.
var ErrClosed = errors.New("screen closed")

// Confirmer meminta konfirmasi user sebelum mutasi destruktif dikirim.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// screen adalah protokol bersama semua layar resource: flag loading, banner
// error tunggal, dan context seumur layar. Close membatalkan context sehingga
// request yang selesai terlambat tidak lagi menulis state (bukan lagi update
// menggantung seperti di aplikasi aslinya).
type screen struct {
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc

	api   *gateway.Client
	store *session.Store
	auth  *auth.Controller

	loading bool
	errMsg  string
}

func newScreen(api *gateway.Client, store *session.Store, authc *auth.Controller) screen {
	ctx, cancel := context.WithCancel(context.Background())
	return screen{ctx: ctx, cancel: cancel, api: api, store: store, auth: authc}
}

// begin menandai awal satu operasi: tolak kalau layar sudah ditutup atau
// masih ada request berjalan, lalu bersihkan error lama.
func (s *screen) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return ErrClosed
	}
	if s.loading {
		return ErrBusy
	}
	s.loading = true
	s.errMsg = ""
	return nil
}

func (s *screen) finish() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// commit menjalankan mutasi state di bawah lock, kecuali layar sudah ditutup;
// hasil request yang datang setelah Close dibuang begitu saja.
func (s *screen) commit(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return
	}
	fn()
}

func (s *screen) setError(msg string) {
	s.commit(func() { s.errMsg = msg })
}

// token mengambil token sesi; token hilang diperlakukan seperti 401 dengan
// pesan khas layar yang bersangkutan.
func (s *screen) token(missingMsg string) (string, error) {
	sess := s.store.Get()
	if !sess.IsLoggedIn() {
		s.setError(missingMsg)
		s.auth.HandleAuthFailure()
		return "", gateway.ErrAuthExpired
	}
	return sess.Token, nil
}

// fail menerapkan klasifikasi kegagalan bersama: 401 memaksa logout dan
// memakai authMsg (atau pesan server/fallback jika authMsg kosong), pesan
// server tampil verbatim, sisanya memakai fallback milik operasi.
func (s *screen) fail(err error, authMsg, fallback string) {
	if errors.Is(err, gateway.ErrAuthExpired) {
		if authMsg == "" {
			authMsg = gateway.Message(err, fallback)
		}
		s.setError(authMsg)
		s.auth.HandleAuthFailure()
		return
	}
	s.setError(gateway.Message(err, fallback))
}

// Loading melaporkan apakah ada request yang sedang berjalan.
func (s *screen) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// ErrorMessage adalah isi banner error layar; kosong berarti tidak ada error.
func (s *screen) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Close mengakhiri masa hidup layar dan membatalkan request yang tersisa.
func (s *screen) Close() { s.cancel() }
