package params

import (
	"context"
)

// Registry holds the parameter definitions and options declared by application
// namespaces. Definitions live for the process lifetime and are expected to be
// registered during initialization, before resolution starts.
type Registry interface {
	// RegisterNamespace creates an empty namespace and stores any supplied
	// per-level options. Registering an existing namespace is a no-op.
	RegisterNamespace(name string, adminOptions, userOptions Options)

	// UnregisterNamespace removes the namespace with all its definitions and
	// options. It reports whether the namespace existed. Persisted overrides
	// are left untouched.
	UnregisterNamespace(name string) bool

	// Register declares a parameter at the given level, auto-creating the
	// namespace when needed. Invalid levels and duplicate names are ignored,
	// the first registration wins.
	Register(namespace string, level Level, name string, metadata Metadata)

	// Update merges metadata keys into an existing definition. Unknown
	// namespace, level or name combinations are ignored.
	Update(namespace string, level Level, name string, metadata Metadata)

	// GetDefinition returns the stored metadata of a registered parameter.
	// It returns a NotDefinedError when the level is unrecognized, the
	// namespace is unknown or the name is not registered at that level.
	// The returned mapping is the registry's own, callers reading it must
	// not mutate it.
	GetDefinition(namespace string, level Level, name string) (Metadata, error)

	// Option returns the option value stored for the namespace and level, or
	// deflt when the combination is unknown. It never fails.
	Option(namespace string, level Level, name string, deflt any) any

	// Namespaces returns all registered namespace names in lexicographic order.
	Namespaces() []string

	// ParameterNames returns the names registered at the given level in
	// registration order.
	ParameterNames(namespace string, level Level) []string

	// Reset drops every namespace, returning the registry to its initial
	// empty state. Intended for tests.
	Reset()
}

// Override is one persisted parameter override. UserID is empty for
// admin-level records.
type Override struct {
	UserID string
	Name   string
	Value  string
}

// OverrideStore persists parameter overrides keyed by fully-qualified name,
// optionally scoped by a user identity. Stored values are encoded, callers
// decode with DecodeValue.
type OverrideStore interface {
	Fetch(ctx context.Context, name string) (string, error)
	Store(ctx context.Context, name, value string) error
	FetchForUser(ctx context.Context, userID, name string) (string, error)
	StoreForUser(ctx context.Context, userID, name, value string) error
}

// OverrideAdminStore extends OverrideStore with maintenance operations used
// by tooling.
type OverrideAdminStore interface {
	OverrideStore

	List(ctx context.Context) ([]Override, error)
	ListForUser(ctx context.Context, userID string) ([]Override, error)
	Delete(ctx context.Context, name string) error
	DeleteForUser(ctx context.Context, userID, name string) error
}

// UserIdentity addresses the owner of user-level overrides and exposes the
// capability predicate consulted by the needs_mailbox option.
type UserIdentity interface {
	// Identity returns the stable identifier overrides are keyed by.
	Identity() string

	// HasMailbox reports whether the user owns a mailbox.
	HasMailbox() bool
}

// AdminParamService resolves and persists admin-level parameter values.
type AdminParamService interface {
	// Get returns the effective value of a parameter, the persisted override
	// when one exists and the declared default otherwise.
	// It returns a NotDefinedError when the parameter was never registered.
	Get(ctx context.Context, namespace, name string) (string, error)

	// Save persists a new value for a parameter, invoking the definition's
	// change callback first when the value actually changes.
	// It returns a NotDefinedError when the parameter was never registered.
	Save(ctx context.Context, namespace, name, value string) error

	// List resolves every admin-level parameter, namespaces in lexicographic
	// order and parameters in registration order.
	// It returns a deep copy safe for external mutation.
	List(ctx context.Context) ([]NamespaceParams, error)
}

// UserParamService resolves and persists user-level parameter values scoped
// by a user identity.
type UserParamService interface {
	// Get returns the effective value of a parameter for the given user.
	// It returns a NotDefinedError when the parameter was never registered.
	Get(ctx context.Context, user UserIdentity, namespace, name string) (string, error)

	// Save persists a new value for the given user, invoking the definition's
	// change callback first when the value actually changes.
	// It returns a NotDefinedError when the parameter was never registered.
	Save(ctx context.Context, user UserIdentity, namespace, name, value string) error

	// List resolves every user-level parameter visible to the given user.
	// Namespaces without user-level parameters are skipped, as are namespaces
	// whose needs_mailbox option is set when the user owns no mailbox.
	List(ctx context.Context, user UserIdentity) ([]NamespaceParams, error)
}
