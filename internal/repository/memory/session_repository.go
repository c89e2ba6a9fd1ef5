package memory

import (
	"time"

	"ai-helper-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

// NewSessionRepository creates a session store whose entries expire after
// ttlHours. Expired sessions are purged every 10 minutes.
func NewSessionRepository(ttlHours int) *SessionRepository {
	c := cache.New(time.Duration(ttlHours)*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *entity.Session) {
	r.cache.Set(session.Token, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(token string) (*entity.Session, bool) {
	if x, found := r.cache.Get(token); found {
		return x.(*entity.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(token string) {
	r.cache.Delete(token)
}
