package gitkit

// Command is implemented by every subcommand options struct. Args renders
// the full ordered argument vector, leading subcommand token included.
// Rendering is pure: it spawns nothing and touches no disk. Flags come
// before positional arguments, in the order git's documentation lists
// them. A required field that is missing or empty yields an OptionsError
// rather than an empty token git would misread.
type Command interface {
	Args() ([]string, error)
}

// Bool returns a pointer to v, for tri-state option fields such as
// AddOptions.All where nil means "omit the flag entirely".
func Bool(v bool) *bool {
	return &v
}
