package service

// OTPHasher hashes one-time passwords for storage and checks submitted codes
// against the stored hash.
type OTPHasher interface {
	Hash(code string) (string, error)
	Check(code, hash string) bool
}
