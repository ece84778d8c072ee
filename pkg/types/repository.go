package types

import (
	"context"
	"errors"
	"iter"
)

// Repository is a schema store that reports can read from. Node types and
// namespaces are read through a Session; descriptors are repository wide.
type Repository interface {
	// Login opens a read-only session. The caller must Logout when done.
	// Returns ErrRepositoryDetached if the store is not available.
	Login(ctx context.Context) (Session, error)

	// DescriptorKeys returns the keys of all repository descriptors.
	DescriptorKeys() ([]string, error)

	// Descriptor returns the value of one repository descriptor.
	// Returns ErrDescriptorNotFound if the key is unknown.
	Descriptor(key string) (string, error)
}

// Session is a read-only handle on a schema store.
type Session interface {
	// NodeTypes enumerates every node type known to the store, in store
	// order. A non-nil error ends the enumeration.
	NodeTypes() iter.Seq2[*NodeType, error]

	// NamespacePrefixes returns every prefix visible to the session,
	// including the empty prefix.
	NamespacePrefixes() ([]string, error)

	// RegistryPrefixes returns the globally registered prefixes.
	RegistryPrefixes() ([]string, error)

	// NamespaceURI resolves a prefix visible to the session.
	// Returns ErrNamespaceNotFound if the prefix is unknown.
	NamespaceURI(prefix string) (string, error)

	// Logout releases the session. Idempotent.
	Logout() error
}

// Repository lifecycle and lookup errors.
var (
	ErrRepositoryDetached = errors.New("repository is detached")
	ErrAlreadyAttached    = errors.New("repository is already attached")
	ErrSessionClosed      = errors.New("session is closed")
	ErrDescriptorNotFound = errors.New("descriptor not found")
	ErrNamespaceNotFound  = errors.New("namespace not found")
	ErrInvalidName        = errors.New("invalid name")
	ErrDuplicateName      = errors.New("duplicate name")
)
