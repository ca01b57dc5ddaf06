package controllers

import "github.com/yeremiapane/restofood-client/models"

// Actions menjelaskan aksi apa saja yang tersedia pada item daftar restoran
// untuk role tertentu. Pengganti pola "callback opsional ada atau tidak" di
// aplikasi aslinya: varian eksplisit, bukan presence-check fungsi.
type Actions uint8

const (
	ActionEdit Actions = 1 << iota
	ActionDelete
	ActionManageMenus
)

func (a Actions) Can(action Actions) bool {
	return a&action != 0
}

// ActionsForRole menghitung kapabilitas dari role sesi; hanya admin yang
// boleh mengubah data restoran.
func ActionsForRole(role string) Actions {
	if role == models.RoleAdmin {
		return ActionEdit | ActionDelete | ActionManageMenus
	}
	return 0
}
