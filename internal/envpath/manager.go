package envpath

import "github.com/rs/zerolog"

// Manager performs idempotent add and remove of single directory entries
// against the persisted PATH value. Neither operation returns an error: a
// PATH update is a convenience, not a correctness requirement of the
// install, so read and write failures are logged and absorbed rather than
// escalated to the surrounding install/uninstall flow.
type Manager struct {
	store Store
	log   zerolog.Logger
}

// NewManager returns a Manager over store, logging diagnostics to log.
func NewManager(store Store, log zerolog.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// AddPath appends dir to the persisted PATH value. A dir already present,
// compared case-insensitively, is left untouched.
func (m *Manager) AddPath(dir string) {
	value, ok, err := m.store.Read()
	if err != nil {
		m.log.Warn().Err(err).Str("dir", dir).Msg("failed to read PATH value")
		return
	}
	if !ok {
		value = ""
	}

	if _, found := Locate(value, dir); found {
		m.log.Debug().Str("dir", dir).Msg("already on PATH")
		return
	}

	updated := Append(value, dir)
	if err := m.store.Write(updated); err != nil {
		m.log.Warn().Err(err).Str("dir", dir).Msg("failed to write PATH value")
		return
	}
	m.log.Info().Str("dir", dir).Str("path", updated).Msg("added directory to PATH")
}

// RemovePath deletes dir from the persisted PATH value. An absent slot or
// an absent entry is a no-op.
func (m *Manager) RemovePath(dir string) {
	value, ok, err := m.store.Read()
	if err != nil {
		m.log.Warn().Err(err).Str("dir", dir).Msg("failed to read PATH value")
		return
	}
	if !ok {
		return
	}

	pos, found := Locate(value, dir)
	if !found {
		m.log.Debug().Str("dir", dir).Msg("not on PATH")
		return
	}

	updated := RemoveAt(value, pos, len(dir))
	if err := m.store.Write(updated); err != nil {
		m.log.Warn().Err(err).Str("dir", dir).Msg("failed to write PATH value")
		return
	}
	m.log.Info().Str("dir", dir).Str("path", updated).Msg("removed directory from PATH")
}
