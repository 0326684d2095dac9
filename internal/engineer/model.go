package engineer

// Engineer is the authoritative record for one software engineer.
type Engineer struct {
	ID        int
	Name      string
	TechStack []string
}

// copyStack returns a fresh slice with the same elements. A nil input
// normalizes to an empty slice so TechStack is never nil.
func copyStack(stack []string) []string {
	out := make([]string, len(stack))
	copy(out, stack)
	return out
}

// clone returns a copy of e whose TechStack shares no memory with e's.
func (e Engineer) clone() Engineer {
	e.TechStack = copyStack(e.TechStack)
	return e
}
