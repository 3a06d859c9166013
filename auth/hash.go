package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt digest from the plaintext.
// bcrypt.DefaultCost (10 rounds) is deliberately slow.
func HashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether plain matches the stored digest. A malformed
// digest and a wrong password both come back false; callers cannot tell the
// cases apart.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
