// Package devserver is an in-memory implementation of the UrbanHive backend
// used for local development and tests.
package devserver

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/urbanhive/urbanhive-client/internal/app/models"
	"github.com/urbanhive/urbanhive-client/internal/pkg/apperrors"
)

// account is a stored user with its password hash
type account struct {
	models.User
	passwordHash string
}

// community is a stored community with its pending join requests in arrival order
type community struct {
	models.Community
	requests []models.JoinRequest
}

// Backend holds all backend state behind a single mutex
type Backend struct {
	mu          sync.Mutex
	users       map[string]*account
	communities map[string]*community
	posts       map[string]*models.Post
	events      map[string]*models.Event
	watches     map[string]*models.NightWatch

	logger zerolog.Logger
	now    func() time.Time
	newID  func() string
}

// NewBackend creates an empty Backend
func NewBackend(logger zerolog.Logger) *Backend {
	return &Backend{
		users:       make(map[string]*account),
		communities: make(map[string]*community),
		posts:       make(map[string]*models.Post),
		events:      make(map[string]*models.Event),
		watches:     make(map[string]*models.NightWatch),
		logger:      logger,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

func reject(status int, message string) error {
	return apperrors.NewStatusError("devserver", status, message)
}

func badRequest(message string) error { return reject(http.StatusBadRequest, message) }
func notFound(message string) error   { return reject(http.StatusNotFound, message) }
func conflict(message string) error   { return reject(http.StatusConflict, message) }

// snapshot returns the public view of a stored user
func (a *account) snapshot() *models.User {
	u := a.User.Clone()
	u.Password = ""
	return u
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
