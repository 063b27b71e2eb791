package auth

import (
	"context"
	"errors"
	"time"

	"recipe-api/entities"

	"gorm.io/gorm"
)

type (
	// SessionRepository is the revocation store behind issued token pairs.
	// The auth middleware consults it on every authenticated request.
	SessionRepository interface {
		CreateSession(ctx context.Context, session *entities.AuthSession) error
		GetSessionByID(ctx context.Context, id string) (*entities.AuthSession, error)
		RevokeSession(ctx context.Context, id string) error
		IsSessionActive(ctx context.Context, id string) (bool, error)
	}

	sessionRepository struct {
		db *gorm.DB
	}
)

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session *entities.AuthSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) GetSessionByID(ctx context.Context, id string) (*entities.AuthSession, error) {
	var session entities.AuthSession
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) RevokeSession(ctx context.Context, id string) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&entities.AuthSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"revoked": true, "revoked_at": &now}).Error
}

func (r *sessionRepository) IsSessionActive(ctx context.Context, id string) (bool, error) {
	session, err := r.GetSessionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if session.Revoked {
		return false, nil
	}
	return session.ExpiresAt.After(time.Now()), nil
}
