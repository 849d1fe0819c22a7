// Package store holds the in-memory state of the service. Every store
// owns its collections, is constructed once at startup, and serializes
// access with its own lock; nothing outside this package mutates the
// collections directly.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/herdsourcing/backend/internal/apperrors"
	"github.com/herdsourcing/backend/internal/models"
)

type UserDirectory struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*models.User
	byEmail map[string]*models.User
	domain  string
	now     func() time.Time
}

func NewUserDirectory(emailDomain string) *UserDirectory {
	return &UserDirectory{
		byID:    make(map[uuid.UUID]*models.User),
		byEmail: make(map[string]*models.User),
		domain:  emailDomain,
		now:     time.Now,
	}
}

// Create registers a user with a unique email.
func (d *UserDirectory) Create(user *models.User) error {
	if err := user.Validate(); err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "invalid user", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, ok := d.byEmail[email]; ok {
		return apperrors.AlreadyExists("email already registered")
	}

	stored := user.Clone()
	stored.Email = email
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = d.now()
	}
	stored.UpdatedAt = stored.CreatedAt

	d.byID[stored.ID] = &stored
	d.byEmail[email] = &stored
	*user = stored.Clone()
	return nil
}

func (d *UserDirectory) GetByID(id uuid.UUID) (*models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	user, ok := d.byID[id]
	if !ok {
		return nil, apperrors.Newf(apperrors.CodeNotFound, "user %s not found", id)
	}
	out := user.Clone()
	return &out, nil
}

func (d *UserDirectory) GetByEmail(email string) (*models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	user, ok := d.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, apperrors.Newf(apperrors.CodeNotFound, "user %s not found", email)
	}
	out := user.Clone()
	return &out, nil
}

// UpdateProfile applies partial profile edits.
func (d *UserDirectory) UpdateProfile(id uuid.UUID, req models.UpdateProfileRequest) (*models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	user, ok := d.byID[id]
	if !ok {
		return nil, apperrors.Newf(apperrors.CodeNotFound, "user %s not found", id)
	}

	if req.DisplayName != nil {
		if strings.TrimSpace(*req.DisplayName) == "" {
			return nil, apperrors.InvalidInput("display name cannot be empty")
		}
		user.DisplayName = *req.DisplayName
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Major != nil {
		user.Major = *req.Major
	}
	if req.Year != nil {
		user.Year = *req.Year
	}
	if req.Skills != nil {
		user.Skills = append([]string(nil), (*req.Skills)...)
	}
	if req.Interests != nil {
		user.Interests = *req.Interests
	}
	if req.Availability != nil {
		user.Availability = *req.Availability
	}
	user.UpdatedAt = d.now()

	out := user.Clone()
	return &out, nil
}

// Resolve turns an email or free-text name into a user record. It never
// fails: when no record matches, a new one is minted and registered.
//
// This is best-effort identification, not an authoritative lookup. Two
// free-text names that normalize to the same synthesized email resolve
// to the same record, silently merging identities. Real identity
// resolution belongs in front of this before production use.
func (d *UserDirectory) Resolve(identifier string) models.User {
	identifier = strings.TrimSpace(identifier)

	var email, displayName string
	if strings.Contains(identifier, "@") {
		email = strings.ToLower(identifier)
		displayName = identifier[:strings.Index(identifier, "@")]
	} else {
		email = synthesizeEmail(identifier, d.domain)
		displayName = identifier
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if user, ok := d.byEmail[email]; ok {
		return user.Clone()
	}

	minted := &models.User{
		ID:          uuid.New(),
		Email:       email,
		DisplayName: displayName,
		CreatedAt:   d.now(),
		UpdatedAt:   d.now(),
	}
	d.byID[minted.ID] = minted
	d.byEmail[email] = minted
	return minted.Clone()
}

func synthesizeEmail(name, domain string) string {
	compact := strings.Join(strings.Fields(name), "")
	return strings.ToLower(compact) + "@" + domain
}
