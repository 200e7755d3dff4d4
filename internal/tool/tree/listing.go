package tree

// Listing is the flattened result of a directory walk. Directories holds the
// walk root first and then every expanded subdirectory in pre-order; Files holds
// everything that was not expanded, in visitation order.
type Listing struct {
	Directories []string `json:"directories"`
	Files       []string `json:"files"`
}

// Append adds other's entries after l's, keeping both orders.
func (l *Listing) Append(other Listing) {
	l.Directories = append(l.Directories, other.Directories...)
	l.Files = append(l.Files, other.Files...)
}

// Len returns the total number of entries.
func (l Listing) Len() int {
	return len(l.Directories) + len(l.Files)
}
