package markre

// Config controls resource bounds and acceleration toggles left open
// by the core matching semantics.
type Config struct {
	// MaxDFAStates caps how many states the lazy DFA driver will
	// intern for one pattern before falling back to the Pike-VM path
	// for the remainder of a search.
	MaxDFAStates int

	// InitialPositionsCap is checked by Validate (it must be >= 0) but
	// is not otherwise read: the capture slot buffer a Match is built
	// from is always sized to the pattern's mark count.
	InitialPositionsCap int

	// EnablePrefilter toggles the literal Aho-Corasick prefilter.
	// Matching is identical with it disabled, only slower on patterns
	// dominated by a large literal alternation.
	EnablePrefilter bool

	// MinPrefilterLiterals is the smallest alternation width at which
	// building a prefilter is worth it.
	MinPrefilterLiterals int
}

// DefaultConfig returns the engine's default resource bounds.
func DefaultConfig() Config {
	return Config{
		MaxDFAStates:         10_000,
		InitialPositionsCap:  10,
		EnablePrefilter:      true,
		MinPrefilterLiterals: 8,
	}
}

// Validate reports whether c's fields are within usable ranges.
func (c Config) Validate() error {
	if c.MaxDFAStates < 1 {
		return &ConfigError{Field: "MaxDFAStates", Message: "must be >= 1"}
	}
	if c.InitialPositionsCap < 0 {
		return &ConfigError{Field: "InitialPositionsCap", Message: "must be >= 0"}
	}
	if c.MinPrefilterLiterals < 1 {
		return &ConfigError{Field: "MinPrefilterLiterals", Message: "must be >= 1"}
	}
	return nil
}

// ConfigError reports an out-of-range Config field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "markre: invalid config: " + e.Field + ": " + e.Message
}
