package ports

// Hasher computes content fingerprints.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashBytes returns the hex fingerprint of data.
	HashBytes(data []byte) string

	// HashFile returns the hex fingerprint of the file at path.
	HashFile(path string) (string, error)
}
