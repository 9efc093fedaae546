package viewmodel

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// NavAvatarSize is the pixel size of the avatar shown in the nav.
const NavAvatarSize = 32

// AvatarURL is the Gravatar identicon for email, empty when email is blank.
func AvatarURL(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ""
	}
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=%d&d=identicon", md5.Sum([]byte(email)), NavAvatarSize)
}
