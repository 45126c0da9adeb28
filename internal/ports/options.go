package ports

// OptionsPort locates and reads saved port build options.
type OptionsPort interface {
	// Discover returns the option files recorded for a package, least
	// specific first.  Zero files is not an error.
	Discover(name string, origin string) ([]string, error)

	// Load parses option files in order into a single option map.
	// Later files override earlier ones per option.
	Load(paths []string) (map[string]bool, error)
}
