package domain

// Settings holds the persisted configuration consumed by the core.
type Settings struct {
	WorkNormSeconds  int
	DefaultBreakType BreakType
}

// DefaultSettings returns the compiled-in configuration.
func DefaultSettings() *Settings {
	return &Settings{
		WorkNormSeconds:  DefaultWorkNormSeconds,
		DefaultBreakType: BreakGeneral,
	}
}
