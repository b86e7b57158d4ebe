package session

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/urbanhive/urbanhive-client/internal/app/models"
	"github.com/urbanhive/urbanhive-client/internal/app/models/dto"
	"github.com/urbanhive/urbanhive-client/internal/app/state"
	"github.com/urbanhive/urbanhive-client/internal/pkg/apperrors"
	"github.com/urbanhive/urbanhive-client/internal/pkg/securestore"
)

// API is the subset of the backend client the manager drives
type API interface {
	Login(ctx context.Context, id, password string) (*dto.LoginResult, error)
	FetchUserDetails(ctx context.Context, userID string) (*models.User, error)
	RespondToFriendRequest(ctx context.Context, receiverID, senderID string, response models.FriendResponse) (*dto.MessageResponse, error)
	CreateCommunity(ctx context.Context, managerID, area string, location models.Location) (*dto.CommunityCreatedResponse, error)
}

// Manager keeps the session store and the persisted user id in step with the backend
type Manager struct {
	api     API
	session *state.SessionStore
	secure  securestore.Store
	logger  zerolog.Logger
}

// NewManager creates a new Manager
func NewManager(api API, session *state.SessionStore, secure securestore.Store, logger zerolog.Logger) *Manager {
	return &Manager{
		api:     api,
		session: session,
		secure:  secure,
		logger:  logger,
	}
}

// Session returns the underlying session store
func (m *Manager) Session() *state.SessionStore {
	return m.session
}

// Login authenticates, saves the snapshot and persists the user id
func (m *Manager) Login(ctx context.Context, id, password string) (*dto.LoginResult, error) {
	result, err := m.api.Login(ctx, id, password)
	if err != nil {
		return nil, err
	}

	m.session.Save(result.Data)
	if err := m.secure.Set(ctx, securestore.KeyUserID, id); err != nil {
		// The session is valid for this run; only the next launch is affected
		m.logger.Warn().Err(err).Msg("Failed to persist user id")
	}

	m.logger.Info().Str("user_id", id).Msg("User logged in")
	return result, nil
}

// Restore re-identifies the user persisted by a previous login. It returns
// nil without error when nothing was persisted. A persisted id the backend no
// longer knows is forgotten.
func (m *Manager) Restore(ctx context.Context) (*models.User, error) {
	userID, err := m.secure.Get(ctx, securestore.KeyUserID)
	if errors.Is(err, securestore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewStateError("restoreSession", err, "Failed to read the saved session")
	}

	user, err := m.api.FetchUserDetails(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			m.logger.Info().Str("user_id", userID).Msg("Saved user no longer exists, clearing session")
			if delErr := m.secure.Delete(ctx, securestore.KeyUserID); delErr != nil {
				m.logger.Warn().Err(delErr).Msg("Failed to clear persisted user id")
			}
		}
		return nil, err
	}

	m.session.Save(user)
	return m.session.Snapshot(), nil
}

// Refresh refetches the logged in user and replaces the snapshot
func (m *Manager) Refresh(ctx context.Context) (*models.User, error) {
	userID := m.session.UserID()
	if userID == "" {
		return nil, apperrors.NewStateError("refreshSession", apperrors.ErrSessionNotLoaded, apperrors.MsgNotLoggedIn)
	}

	user, err := m.api.FetchUserDetails(ctx, userID)
	if err != nil {
		return nil, err
	}
	m.session.Save(user)
	return m.session.Snapshot(), nil
}

// Logout clears the snapshot and the persisted user id
func (m *Manager) Logout(ctx context.Context) error {
	m.session.Logout()
	if err := m.secure.Delete(ctx, securestore.KeyUserID); err != nil {
		return apperrors.NewStateError("logout", err, "Failed to clear the saved session")
	}
	m.logger.Info().Msg("User logged out")
	return nil
}

// RespondToFriendRequest answers the request of senderID for the logged in user.
// The request is removed from the snapshot either way; an accepted sender becomes a friend.
func (m *Manager) RespondToFriendRequest(ctx context.Context, senderID string, response models.FriendResponse) (*dto.MessageResponse, error) {
	user := m.session.Snapshot()
	if user == nil {
		return nil, apperrors.NewStateError("respondToFriendRequest", apperrors.ErrSessionNotLoaded, apperrors.MsgNotLoggedIn)
	}

	resp, err := m.api.RespondToFriendRequest(ctx, user.ID, senderID, response)
	if err != nil {
		return nil, err
	}

	if response == models.FriendAccept {
		friend := models.Friend{ID: senderID}
		for _, r := range user.Requests {
			if r.SenderID == senderID {
				friend.Name = r.SenderName
				break
			}
		}
		if err := m.session.AddFriend(friend); err != nil {
			return nil, err
		}
	}
	if err := m.session.RemoveRequest(senderID); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateCommunity creates a community managed by the logged in user and adds it to the snapshot
func (m *Manager) CreateCommunity(ctx context.Context, area string, location models.Location) (*dto.CommunityCreatedResponse, error) {
	userID := m.session.UserID()
	if userID == "" {
		return nil, apperrors.NewStateError("createCommunity", apperrors.ErrSessionNotLoaded, apperrors.MsgNotLoggedIn)
	}

	resp, err := m.api.CreateCommunity(ctx, userID, area, location)
	if err != nil {
		return nil, err
	}
	if err := m.session.AddCommunity(models.UserCommunity{Area: area, Location: location}); err != nil {
		return nil, err
	}
	return resp, nil
}
