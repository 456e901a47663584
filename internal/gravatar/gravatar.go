// Package gravatar derives deterministic avatar URLs from email addresses.
package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	size          = "200"
	rating        = "pg"
	defaultImage  = "mm"
	gravatarURLFm = "https://www.gravatar.com/avatar/%s?s=%s&r=%s&d=%s"
)

// URL returns the gravatar URL for the given email. The same email always
// yields the same URL; the hash input is the trimmed, lowercased address.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf(gravatarURLFm, hex.EncodeToString(sum[:]), size, rating, defaultImage)
}
