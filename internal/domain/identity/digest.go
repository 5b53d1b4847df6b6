package identity

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Digest computes the development-grade salted password digest used by
// the portal. This is intentionally not a slow password hash: initial
// passwords are issued by the registrar and rotated out of band.
func Digest(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

func VerifyDigest(password, salt, digest string) bool {
	computed := Digest(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
