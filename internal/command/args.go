package command

// Args is the merged argument object a handler receives: bound positional
// parameters (always strings) plus all declared flags with their values.
type Args map[string]any

func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// String returns the named argument as a string, or "" when absent or not a
// string.
func (a Args) String(name string) string {
	s, _ := a[name].(string)
	return s
}

func (a Args) Bool(name string) bool {
	b, _ := a[name].(bool)
	return b
}

func (a Args) Int(name string) int {
	i, _ := a[name].(int)
	return i
}
