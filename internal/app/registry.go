package app

import (
	"sort"
	"sync"

	"github.com/param-vault/param-vault/internal/domain/params"
	"github.com/param-vault/param-vault/internal/pkg/logger"
)

// registry implements the params.Registry interface with in-memory tables.
// Duplicate and unknown registrations stay silent no-ops towards the caller,
// a warning is logged so stray declarations show up during development.
type registry struct {
	mu         sync.RWMutex
	namespaces map[string]*namespaceEntry
	logger     logger.Logger
}

// namespaceEntry holds the per-level tables of one namespace
type namespaceEntry struct {
	defs    map[params.Level]map[string]params.Metadata
	order   map[params.Level][]string
	options map[params.Level]params.Options
}

func newNamespaceEntry() *namespaceEntry {
	entry := &namespaceEntry{
		defs:    make(map[params.Level]map[string]params.Metadata),
		order:   make(map[params.Level][]string),
		options: make(map[params.Level]params.Options),
	}
	for _, level := range params.Levels() {
		entry.defs[level] = make(map[string]params.Metadata)
	}
	return entry
}

// NewRegistry creates a new in-memory registry instance
func NewRegistry(logger logger.Logger) (params.Registry, error) {
	return &registry{
		namespaces: make(map[string]*namespaceEntry),
		logger:     logger,
	}, nil
}

// RegisterNamespace creates an empty namespace and stores any supplied
// per-level options. Registering an existing namespace keeps the first
// registration, supplied options are dropped in that case.
func (r *registry) RegisterNamespace(name string, adminOptions, userOptions params.Options) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.namespaces[name]; ok {
		if adminOptions != nil || userOptions != nil {
			r.logger.Warn("Namespace ", name, " already registered, ignoring supplied options")
		}
		return
	}
	r.createNamespaceLocked(name, adminOptions, userOptions)
}

func (r *registry) createNamespaceLocked(name string, adminOptions, userOptions params.Options) {
	entry := newNamespaceEntry()
	if adminOptions != nil {
		entry.options[params.LevelAdmin] = adminOptions.Clone()
	}
	if userOptions != nil {
		entry.options[params.LevelUser] = userOptions.Clone()
	}
	r.namespaces[name] = entry
}

// UnregisterNamespace removes the namespace with all its definitions and
// options. Persisted overrides are left untouched.
func (r *registry) UnregisterNamespace(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.namespaces[name]; !ok {
		return false
	}
	delete(r.namespaces, name)
	return true
}

// Register declares a parameter at the given level, auto-creating the
// namespace when needed. The first registration of a name wins.
func (r *registry) Register(namespace string, level params.Level, name string, metadata params.Metadata) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.namespaces[namespace]
	if !ok {
		r.createNamespaceLocked(namespace, nil, nil)
		entry = r.namespaces[namespace]
	}

	if !level.Valid() {
		r.logger.Warn("Ignoring registration of ", params.FullName(namespace, name), ": invalid level ", string(level))
		return
	}
	if _, exists := entry.defs[level][name]; exists {
		r.logger.Warn("Ignoring duplicate registration of ", params.FullName(namespace, name))
		return
	}

	def := metadata.Clone()
	if def == nil {
		def = params.Metadata{}
	}
	entry.defs[level][name] = def
	entry.order[level] = append(entry.order[level], name)
}

// Update merges metadata keys into an existing definition. Unknown
// combinations are ignored.
func (r *registry) Update(namespace string, level params.Level, name string, metadata params.Metadata) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.namespaces[namespace]
	if !ok || !level.Valid() {
		r.logger.Warn("Ignoring update of ", params.FullName(namespace, name), ": not registered")
		return
	}
	def, exists := entry.defs[level][name]
	if !exists {
		r.logger.Warn("Ignoring update of ", params.FullName(namespace, name), ": not registered")
		return
	}
	def.Merge(metadata.Clone())
}

// GetDefinition returns the stored metadata of a registered parameter
func (r *registry) GetDefinition(namespace string, level params.Level, name string) (params.Metadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !level.Valid() {
		return nil, &params.NotDefinedError{Namespace: namespace, Name: name}
	}
	entry, ok := r.namespaces[namespace]
	if !ok {
		return nil, &params.NotDefinedError{Namespace: namespace, Name: name}
	}
	def, ok := entry.defs[level][name]
	if !ok {
		return nil, &params.NotDefinedError{Namespace: namespace, Name: name}
	}
	return def, nil
}

// Option returns the option value stored for the namespace and level, or
// deflt when the combination is unknown
func (r *registry) Option(namespace string, level params.Level, name string, deflt any) any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.namespaces[namespace]
	if !ok {
		return deflt
	}
	options, ok := entry.options[level]
	if !ok {
		return deflt
	}
	value, ok := options[name]
	if !ok {
		return deflt
	}
	return value
}

// Namespaces returns all registered namespace names in lexicographic order
func (r *registry) Namespaces() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.namespaces))
	for name := range r.namespaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParameterNames returns the names registered at the given level in
// registration order
func (r *registry) ParameterNames(namespace string, level params.Level) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.namespaces[namespace]
	if !ok {
		return nil
	}
	names := make([]string, len(entry.order[level]))
	copy(names, entry.order[level])
	return names
}

// Reset drops every namespace, returning the registry to its initial state
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.namespaces = make(map[string]*namespaceEntry)
}
