// Package localstore implementa la persistencia local de la consola: un
// directorio de estado con un archivo JSON por clave, con semántica de
// localStorage. Opera sobre afero.Fs para que los tests usen un filesystem
// en memoria.
package localstore

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/shadows/nblb-console/pkg/logger"
)

// Store acceso clave→archivo dentro del directorio de estado.
// Lectura-modificación-escritura de archivo completo por operación, sin
// locking entre procesos: dos consolas sobre el mismo directorio compiten y
// gana el último escritor.
type Store struct {
	fs  afero.Fs
	dir string
	log *logger.Logger
}

// New crea el store y asegura que el directorio exista.
func New(fs afero.Fs, dir string, log *logger.Logger) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &Store{fs: fs, dir: dir, log: log}, nil
}

// Read devuelve el contenido de la clave y si existía.
func (s *Store) Read(key string) ([]byte, bool) {
	data, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Write persiste el contenido de la clave (reemplazo completo).
func (s *Store) Write(key string, data []byte) error {
	return afero.WriteFile(s.fs, s.path(key), data, 0o600)
}

// Delete elimina la clave; no es error que no exista.
func (s *Store) Delete(key string) error {
	err := s.fs.Remove(s.path(key))
	if err != nil {
		if exists, _ := afero.Exists(s.fs, s.path(key)); !exists {
			return nil
		}
	}
	return err
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
