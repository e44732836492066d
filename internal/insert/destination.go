package insert

// Destination marks where the new workspace goes relative to a pivot
// workspace: immediately before it or immediately after it.
type Destination struct {
	pivot  string
	before bool
}

// NewDestination builds a destination from a pivot workspace name, which
// must have been validated non-empty upstream.
func NewDestination(pivot string, before bool) Destination {
	return Destination{pivot: pivot, before: before}
}

// Pivot returns the name of the pivot workspace.
func (d Destination) Pivot() string {
	return d.pivot
}

// Before reports whether the insertion happens before the pivot instead
// of after it.
func (d Destination) Before() bool {
	return d.before
}
