package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/crypto/bcrypt"

	"todolist_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum number of characters for a password.
	minPasswordLength = 6

	// sessionTokenLength is the length of generated session tokens.
	sessionTokenLength = 32

	// SessionTTL is how long a session stays valid after login or registration.
	SessionTTL = 24 * time.Hour
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// Returns ErrEmailAlreadyExists if a user with the same email exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the given email address.
	// Returns ErrUserNotFound if no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the given ID.
	// Returns ErrUserNotFound if no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error
}

// ClientInfo carries request metadata recorded on new sessions.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

// ProfileUpdate describes a partial profile update. Nil fields are left
// untouched; an explicitly empty PhotoURL regenerates the default
// placeholder avatar.
type ProfileUpdate struct {
	DisplayName *string
	PhotoURL    *string
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users    UserRepository
	sessions SessionRepository
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, sessions SessionRepository) *authUsecase {
	return &authUsecase{
		users:    users,
		sessions: sessions,
	}
}

// validatePassword checks that a password meets the minimum requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// Register creates a new user with a bcrypt-hashed password and
// establishes a session for it. The returned user carries the stored
// hash only internally; the JSON encoding never exposes it.
func (u *authUsecase) Register(ctx context.Context, email, password, displayName string, client ClientInfo) (*entity.User, *entity.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	displayName = strings.TrimSpace(displayName)

	if err := validatePassword(password); err != nil {
		return nil, nil, err
	}
	if displayName == "" {
		displayName = entity.DefaultDisplayName(email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		DisplayName: displayName,
		PhotoURL:    entity.DefaultPhotoURL(displayName),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	session, err := u.establishSession(ctx, user.ID, client)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Login authenticates a user and establishes a session on success.
// A bcrypt comparison runs even when the email is unknown so that
// response timing does not reveal whether the account exists.
func (u *authUsecase) Login(ctx context.Context, email, password string, client ClientInfo) (*entity.User, *entity.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the path for
	// unknown emails (timing attack mitigation).
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := u.establishSession(ctx, user.ID, client)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// CurrentUser returns the user a resolved session belongs to.
func (u *authUsecase) CurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// Logout destroys the session server-side. Logging out an already
// destroyed session is not an error.
func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := u.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}

// UpdateProfile applies a partial profile update. Only supplied fields
// change; an explicitly empty photoURL regenerates the placeholder
// avatar from the effective display name.
func (u *authUsecase) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.DisplayName != nil && *update.DisplayName != "" {
		user.DisplayName = strings.TrimSpace(*update.DisplayName)
	}
	if update.PhotoURL != nil {
		if *update.PhotoURL != "" {
			user.PhotoURL = *update.PhotoURL
		} else {
			name := user.DisplayName
			if name == "" {
				name = entity.DefaultDisplayName(user.Email)
			}
			user.PhotoURL = entity.DefaultPhotoURL(name)
		}
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ResolveSession maps a session token to the owning user ID. Expired
// sessions are deleted lazily and reported as not found.
func (u *authUsecase) ResolveSession(ctx context.Context, sessionID string) (uint, error) {
	session, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	if session.IsExpired() {
		_ = u.sessions.Delete(ctx, sessionID)
		return 0, ErrSessionExpired
	}
	return session.UserID, nil
}

// establishSession creates and persists a fresh session for a user.
func (u *authUsecase) establishSession(ctx context.Context, userID uint, client ClientInfo) (*entity.Session, error) {
	token, err := gonanoid.New(sessionTokenLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := time.Now()
	session := &entity.Session{
		ID:        token,
		UserID:    userID,
		UserAgent: client.UserAgent,
		IPAddress: client.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return session, nil
}
