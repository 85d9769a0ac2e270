package store

import (
	"path/filepath"

	"sharthi/entity"
)

// One canonical file; the legacy multi-key redundancy of the browser client
// is not a contract and is not reproduced.
const sessionFile = "session.json"

type SessionRepository struct {
	path string
}

func NewSessionRepository(dir string) *SessionRepository {
	return &SessionRepository{path: filepath.Join(dir, sessionFile)}
}

// Get returns the stored session, or entity.ErrNotFound when signed out.
func (r *SessionRepository) Get() (entity.Session, error) {
	var session entity.Session
	if err := readJSON(r.path, &session); err != nil {
		return entity.Session{}, err
	}
	return session, nil
}

func (r *SessionRepository) Save(session entity.Session) error {
	return writeJSON(r.path, session)
}

func (r *SessionRepository) Clear() error {
	return removeFile(r.path)
}

// Token returns the stored bearer token, or an empty string when signed out.
// An empty token means the Authorization header is omitted entirely.
func (r *SessionRepository) Token() string {
	session, err := r.Get()
	if err != nil {
		return ""
	}
	return session.Token
}
