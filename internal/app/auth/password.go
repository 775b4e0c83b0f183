package auth

import (
	"github.com/alexedwards/argon2id"

	"github.com/tasklane/tasklane/internal/domain/apperrors"
)

var argonParams = &argon2id.Params{
	Memory:      64 * 1024, // 64 MiB
	Iterations:  2,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

// HashPassword produces a salted one-way hash. Two calls with the same
// input yield different strings; the salt travels inside the hash.
func HashPassword(plain string) (string, error) {
	hash, err := argon2id.CreateHash(plain, argonParams)
	if err != nil {
		return "", apperrors.WrapInternal(err, "hash password")
	}
	return hash, nil
}

// VerifyPassword reports whether plain matches hash. A mismatch or a
// malformed hash is simply false, never an error surfaced to the login path.
func VerifyPassword(plain, hash string) bool {
	ok, err := argon2id.ComparePasswordAndHash(plain, hash)
	return err == nil && ok
}
