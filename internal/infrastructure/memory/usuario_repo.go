package memory

import (
	"context"
	"strings"

	"github.com/ganadoboy/ganadoboy-api/internal/domain"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
)

type usuarioRepo Store

func (r *usuarioRepo) Create(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.usuarios {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	s := (*Store)(r)
	u.ID = s.nextID()
	u.FechaRegistro = s.now()
	r.usuarios[u.ID] = *u
	return nil
}

func (r *usuarioRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.usuarios[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.usuarios {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *usuarioRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	u, err := r.FindByEmail(ctx, email)
	return u != nil, err
}

func (r *usuarioRepo) UpdateRefreshToken(ctx context.Context, userID int64, token *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if token == nil {
		delete(r.refreshTokens, userID)
		return nil
	}
	r.refreshTokens[userID] = *token
	return nil
}

func (r *usuarioRepo) MatchRefreshToken(ctx context.Context, userID int64, token string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.refreshTokens[userID]
	return ok && stored == token, nil
}

// SetActivo permite a los tests desactivar cuentas.
func (s *Store) SetActivo(userID int64, activo bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.usuarios[userID]; ok {
		u.Activo = activo
		s.usuarios[userID] = u
	}
}
