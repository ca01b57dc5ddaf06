package geo

import (
	"context"
	"errors"
)

// ErrPermissionDenied berarti user menolak akses lokasi. Ditampilkan sebagai
// error biasa di layar, tidak pernah dicoba ulang otomatis.
var ErrPermissionDenied = errors.New("Location permission denied")

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Provider adalah kolaborator eksternal penyedia lokasi perangkat.
type Provider interface {
	Current(ctx context.Context) (Coordinates, error)
}

// FixedProvider mengembalikan koordinat statis dari konfigurasi; pengganti
// sensor lokasi untuk CLI dan test.
type FixedProvider struct {
	Coordinates Coordinates
}

func (p FixedProvider) Current(ctx context.Context) (Coordinates, error) {
	return p.Coordinates, nil
}

// DeniedProvider mensimulasikan izin lokasi yang ditolak.
type DeniedProvider struct{}

func (DeniedProvider) Current(ctx context.Context) (Coordinates, error) {
	return Coordinates{}, ErrPermissionDenied
}
