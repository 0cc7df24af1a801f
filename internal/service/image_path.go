package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ImagePath maps a user and an uploaded filename to the storage key for
// that user's profile image. The extension is whatever follows the last
// dot of the original filename; it is not validated.
func ImagePath(userID uuid.UUID, filename string) string {
	parts := strings.Split(filename, ".")
	ext := parts[len(parts)-1]
	return fmt.Sprintf("media/accounts/%s/images/profile_image.%s", userID, ext)
}
