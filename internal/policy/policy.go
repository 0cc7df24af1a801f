// Package policy decides, per request method and resource ownership,
// whether a mutation is permitted. Policies are plain functions over
// (method, requester, target) with no transport or persisted state; an
// anonymous requester is represented by uuid.Nil.
package policy

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/profilehub/accounts-server/internal/model"
)

// SafeMethod reports whether the method is read-only and therefore
// always permitted at the object level.
func SafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// User restricts user mutations to the account owner.
type User struct{}

// CanAccess allows safe methods for anyone and mutations only for an
// authenticated requester whose identity equals the target user.
func (User) CanAccess(method string, requester uuid.UUID, target model.User) bool {
	if SafeMethod(method) {
		return true
	}

	if requester != uuid.Nil {
		return requester == target.ID
	}

	return false
}

// Profile restricts profile mutations to the owning user.
type Profile struct{}

// CanAccess allows safe methods for anyone and mutations only for an
// authenticated requester who owns the target profile.
func (Profile) CanAccess(method string, requester uuid.UUID, target model.Profile) bool {
	if SafeMethod(method) {
		return true
	}

	if requester != uuid.Nil {
		return requester == target.UserID
	}

	return false
}
