package sessions

import (
	"context"
	"reflect"
	"time"

	"github.com/supakorn-kn/go-dashboard/objects"
)

// Session is a signed-in admin, addressed by an opaque token.
type Session struct {
	Token     string        `json:"token" bson:"token"`
	Admin     objects.Admin `json:"admin" bson:"admin"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	ExpiresAt time.Time     `json:"expires_at" bson:"expires_at"`
}

func (s Session) GetID() string {
	return s.Token
}

func (s Session) IsNil() bool {
	return reflect.ValueOf(s).IsZero()
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

type Store interface {
	Insert(ctx context.Context, session Session) error
	GetByToken(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
}
