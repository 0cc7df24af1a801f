package policy

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/profilehub/accounts-server/internal/model"
)

func TestSafeMethod(t *testing.T) {
	t.Parallel()

	assert.True(t, SafeMethod(http.MethodGet))
	assert.True(t, SafeMethod(http.MethodHead))
	assert.True(t, SafeMethod(http.MethodOptions))

	assert.False(t, SafeMethod(http.MethodPost))
	assert.False(t, SafeMethod(http.MethodPut))
	assert.False(t, SafeMethod(http.MethodPatch))
	assert.False(t, SafeMethod(http.MethodDelete))
}

func TestUserCanAccess(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	other := uuid.New()
	target := model.User{ID: owner}

	tests := []struct {
		name      string
		method    string
		requester uuid.UUID
		want      bool
	}{
		{name: "anonymous read", method: http.MethodGet, requester: uuid.Nil, want: true},
		{name: "anonymous mutation", method: http.MethodPatch, requester: uuid.Nil, want: false},
		{name: "owner mutation", method: http.MethodPatch, requester: owner, want: true},
		{name: "owner delete", method: http.MethodDelete, requester: owner, want: true},
		{name: "other user mutation", method: http.MethodPatch, requester: other, want: false},
		{name: "other user read", method: http.MethodGet, requester: other, want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, User{}.CanAccess(tt.method, tt.requester, target))
		})
	}
}

func TestProfileCanAccess(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	other := uuid.New()
	target := model.Profile{ID: uuid.New(), UserID: owner}

	tests := []struct {
		name      string
		method    string
		requester uuid.UUID
		want      bool
	}{
		{name: "anonymous read", method: http.MethodGet, requester: uuid.Nil, want: true},
		{name: "anonymous mutation", method: http.MethodPut, requester: uuid.Nil, want: false},
		{name: "owner mutation", method: http.MethodPut, requester: owner, want: true},
		{name: "other user mutation", method: http.MethodPut, requester: other, want: false},
		{name: "profile id is not the ownership key", method: http.MethodPut, requester: target.ID, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Profile{}.CanAccess(tt.method, tt.requester, target))
		})
	}
}
