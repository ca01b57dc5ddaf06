package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/yeremiapane/restofood-client/models"
)

// Store menyimpan token + role di satu file JSON di perangkat, pengganti
// key-value storage di aplikasi mobile. Token diperlakukan sebagai kredensial
// opaque; isinya tidak pernah divalidasi di sini.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Get membaca sesi tersimpan. Selalu absent-safe: file hilang atau korup
// dianggap sama dengan belum pernah login.
func (s *Store) Get() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return models.Session{}
	}
	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return models.Session{}
	}
	return sess
}

// Set menulis token dan role sekaligus. Tulis ke file sementara lalu rename
// supaya pembaca tidak pernah melihat sesi setengah tertulis.
func (s *Store) Set(token, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	raw, err := json.Marshal(models.Session{Token: token, Role: role})
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Clear menghapus sesi; idempoten.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
