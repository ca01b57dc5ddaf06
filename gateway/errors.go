package gateway

import "errors"

// ValidationError adalah kegagalan validasi di sisi klien, sebelum request
// dikirim. Selalu memblokir submit; tidak pernah sampai ke jaringan.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrAuthExpired menandai respons 401 dari backend: kredensial tidak valid
// atau kedaluwarsa. Satu-satunya jenis kegagalan dengan efek samping wajib di
// pemanggil: kosongkan Session Store dan kembali ke keadaan logged-out.
var ErrAuthExpired = errors.New("invalid or expired token")

// ServerError membawa pesan error terstruktur dari backend. Ditampilkan ke
// user apa adanya.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return e.Message
}

// TransportError adalah kegagalan tanpa payload terstruktur: jaringan putus,
// body tidak bisa diparse, atau status tak terduga tanpa pesan.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Message memetakan error hasil Do ke teks yang ditampilkan di layar:
// pesan server ditampilkan verbatim, selain itu pakai teks fallback milik
// operasi yang bersangkutan (mis. "Failed to load restaurants").
func Message(err error, fallback string) string {
	var srv *ServerError
	if errors.As(err, &srv) && srv.Message != "" {
		return srv.Message
	}
	return fallback
}
