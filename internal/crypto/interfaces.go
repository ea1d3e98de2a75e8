package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against them.
//
// Hashes are self-describing (algorithm, cost and salt are embedded), so
// hashes produced with an older cost keep verifying after the cost changes.
type PasswordHasher interface {
	// Hash returns a fresh salted hash of password. Two calls with the same
	// password yield different hashes.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A mismatch is reported
	// as (false, nil); an error means hash is malformed.
	Verify(password, hash string) (bool, error)
}
