package controllers

import (
	"net/http"

	"github.com/yeremiapane/restofood-client/auth"
	"github.com/yeremiapane/restofood-client/gateway"
	"github.com/yeremiapane/restofood-client/models"
	"github.com/yeremiapane/restofood-client/session"
)

// ProfileController adalah layar profil: data user yang sedang login.
type ProfileController struct {
	screen
	user models.User
}

func NewProfileController(api *gateway.Client, store *session.Store, authc *auth.Controller) *ProfileController {
	return &ProfileController{screen: newScreen(api, store, authc)}
}

func (p *ProfileController) Refresh() error {
	if err := p.begin(); err != nil {
		return err
	}
	defer p.finish()

	tok, err := p.token("Sesi tidak valid. Silakan login kembali.")
	if err != nil {
		return err
	}

	var user models.User
	if err := p.api.Do(p.ctx, http.MethodGet, "/user", nil, &user, tok); err != nil {
		p.fail(err, "Sesi telah berakhir. Silakan login kembali.", "Gagal memuat profil")
		return err
	}

	p.commit(func() { p.user = user })
	return nil
}

func (p *ProfileController) User() models.User {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.user
}
