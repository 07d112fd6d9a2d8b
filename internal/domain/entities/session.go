package entities

// Session holds the state shared by every command of a single CLI invocation.
// The root command fills it before any subcommand runs.
type Session struct {
	Settings *Settings
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// CurrentSettings returns the loaded settings, or defaults when none were loaded.
func (it *Session) CurrentSettings() *Settings {
	if it.Settings == nil {
		it.Settings = NewSettings()
	}
	return it.Settings
}
