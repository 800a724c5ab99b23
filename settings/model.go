package settings

// Model owns the current settings snapshot of a session. It has a single
// writer, the owning application, so it carries no locking.
type Model struct {
	current Settings
}

// NewModel seeds a model with initial.
func NewModel(initial Settings) *Model {
	return &Model{current: initial}
}

// Get returns the current snapshot.
func (m *Model) Get() Settings {
	return m.current
}

// Set merges patch into the current snapshot and returns the result.
// No range checks happen here.
func (m *Model) Set(patch Patch) Settings {
	m.current = m.current.Apply(patch)
	return m.current
}

// ApplyPreset sets heading and bold colors to color and keeps everything else.
func (m *Model) ApplyPreset(color string) Settings {
	m.current = m.current.WithAccent(color)
	return m.current
}
