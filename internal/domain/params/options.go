package params

// Well-known option names
const (
	// OptionNeedsMailbox gates user-level parameters behind the mailbox predicate
	OptionNeedsMailbox = "needs_mailbox"
)

// Options holds per-level namespace options, independent of parameter
// definitions
type Options map[string]any

// Clone returns a copy of o
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}
	clone := make(Options, len(o))
	for k, v := range o {
		clone[k] = v
	}
	return clone
}
