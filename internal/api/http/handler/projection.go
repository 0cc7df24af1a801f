package handler

import (
	"fmt"

	"github.com/profilehub/accounts-server/internal/model"
)

// Responses are explicit allow-list projections: a field appears in the
// wire format only if it is listed here. Credentials have no place to
// leak from.

// UserResponse is the serialized form of a user.
type UserResponse struct {
	URL       string          `json:"url"`
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Profile   ProfileResponse `json:"profile"`
}

// ProfileResponse is the serialized form of a profile. User is a
// read-only reference to the owning user; Image points at the image
// endpoint and is null while no image was uploaded.
type ProfileResponse struct {
	URL   string  `json:"url"`
	ID    string  `json:"id"`
	User  string  `json:"user"`
	Image *string `json:"image"`
}

func userResponse(user model.User, profile model.Profile) UserResponse {
	return UserResponse{
		URL:       fmt.Sprintf("/api/users/%s", user.ID),
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Profile:   profileResponse(profile),
	}
}

func profileResponse(profile model.Profile) ProfileResponse {
	resp := ProfileResponse{
		URL:  fmt.Sprintf("/api/profiles/%s", profile.ID),
		ID:   profile.ID.String(),
		User: fmt.Sprintf("/api/users/%s", profile.UserID),
	}
	if profile.ImageKey != "" {
		image := fmt.Sprintf("/api/profiles/%s/image", profile.ID)
		resp.Image = &image
	}
	return resp
}
