package utils

import "golang.org/x/crypto/bcrypt"

// HashSecret hashes a short-lived secret (OTP code) before it is stored.
func HashSecret(s string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(s), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckSecret(hash, s string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(s))
	return err == nil
}
