package localstore

import (
	"encoding/json"

	"github.com/shadows/nblb-console/internal/domain"
	"github.com/shadows/nblb-console/internal/domain/repository"
	"github.com/shadows/nblb-console/pkg/logger"
)

// Verificar en tiempo de compilación que SessionRepository implementa el puerto.
var _ repository.SessionRepository = (*SessionRepository)(nil)

const sessionKey = "session"

// SessionRepository sesión activa persistida como session.json.
// El rol se normaliza al guardar y al leer: aunque alguien edite el archivo a
// mano con "role_shop", el resto del sistema solo ve valores canónicos.
type SessionRepository struct {
	store *Store
	log   *logger.Logger
}

func NewSessionRepository(store *Store, log *logger.Logger) *SessionRepository {
	return &SessionRepository{store: store, log: log}
}

// Save persiste token, rol normalizado y username.
func (r *SessionRepository) Save(s domain.Session) error {
	s.Role = domain.NormalizeRole(string(s.Role))
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.store.Write(sessionKey, data)
}

// Get devuelve la sesión persistida, o la sesión cero si no hay nada o el
// archivo es ilegible. Nunca devuelve error.
func (r *SessionRepository) Get() domain.Session {
	data, ok := r.store.Read(sessionKey)
	if !ok {
		return domain.Session{}
	}
	var s domain.Session
	if err := json.Unmarshal(data, &s); err != nil {
		r.log.Warn().Err(err).Msg("sesión local corrupta, se ignora")
		return domain.Session{}
	}
	s.Role = domain.NormalizeRole(string(s.Role))
	return s
}

// Clear elimina la sesión (logout).
func (r *SessionRepository) Clear() error {
	return r.store.Delete(sessionKey)
}

// Token implementa gateway.TokenSource leyendo el token vigente en cada
// request, para que un login en la misma ejecución surta efecto inmediato.
func (r *SessionRepository) Token() string {
	return r.Get().Token
}
