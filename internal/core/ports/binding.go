package ports

import "go.trai.ch/rebind/internal/core/domain"

//go:generate mockgen -source=binding.go -destination=mocks/mock_binding.go -package=mocks

// BindingDocumentStore loads and persists binding configuration documents.
type BindingDocumentStore interface {
	// Load parses the document at path.
	Load(path string) (BindingDocument, error)

	// New returns an empty configuration skeleton.
	New() BindingDocument

	// Save writes the document to path, clearing a read-only flag first.
	Save(path string, doc BindingDocument) error
}

// BindingDocument is an editable binding configuration.
type BindingDocument interface {
	// Redirects lists the redirects currently declared in the document.
	Redirects() []domain.BindingRedirect

	// ReplaceRedirects removes every declared redirect and adds redirects
	// into the single binding container. Other content is preserved.
	ReplaceRedirects(redirects []domain.BindingRedirect)

	// Original returns the bytes the document was loaded from, nil for new documents.
	Original() []byte

	// Bytes serializes the current document.
	Bytes() ([]byte, error)
}
