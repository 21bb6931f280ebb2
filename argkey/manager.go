package argkey

import (
	"fmt"
	"sync"
)

// Manager is a named registry of [Keyer] drivers used for key
// derivation. [Manager.AsKeyer] adapts it to [Keyer] by delegating to the
// default driver, so a Manager can be injected wherever a Keyer is expected
// and its default switched at runtime.
//
// A Manager is safe for concurrent use. Key derivation only takes the read
// lock, so registering a driver never blocks on an in-flight Key beyond the
// driver lookup.
type Manager struct {
	mu      sync.RWMutex
	drivers map[DriverName]Keyer
	def     DriverName
}

// NewManager returns a Manager with no drivers whose default is defaultDriver.
// Drivers must be registered with [Manager.RegisterDriver] before
// [Manager.Key] is called.
//
// Use [NewDefaultManager] for the variant that registers every built-in
// driver.
func NewManager(defaultDriver DriverName) *Manager {
	return &Manager{
		drivers: make(map[DriverName]Keyer),
		def:     defaultDriver,
	}
}

// NewDefaultManager creates a Manager with the json, blake2b (32-byte) and
// xxhash drivers registered. The default driver is [DriverJSON].
func NewDefaultManager() *Manager {
	b2, _ := NewBlake2bKeyer(DefaultBlake2bOptions())

	m := NewManager(DriverJSON)
	_ = m.RegisterDriver(DriverJSON, NewJSONKeyer())
	_ = m.RegisterDriver(DriverBlake2b, b2)
	_ = m.RegisterDriver(DriverXXHash, NewXXHashKeyer())
	return m
}

// RegisterDriver adds or replaces a named keyer in the Manager.
func (m *Manager) RegisterDriver(name DriverName, k Keyer) error {
	if name == "" {
		return ErrEmptyDriverName
	}
	if k == nil {
		return ErrNilKeyer
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = k
	return nil
}

// Driver returns the [Keyer] registered under name, or [ErrDriverNotFound].
func (m *Manager) Driver(name DriverName) (Keyer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	k, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	return k, nil
}

// SetDefaultDriver changes the driver used by [Manager.Key]. The named
// driver must already be registered.
func (m *Manager) SetDefaultDriver(name DriverName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drivers[name]; !ok {
		return fmt.Errorf("%w: cannot make %q the default before it is registered",
			ErrDriverNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultDriver returns the driver name used by [Manager.Key].
func (m *Manager) DefaultDriver() DriverName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// HasDriver reports whether name is registered.
func (m *Manager) HasDriver(name DriverName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drivers[name]
	return ok
}

// Key derives the key for args with the default driver.
func (m *Manager) Key(args []any) (string, error) {
	k, err := m.resolveDefault()
	if err != nil {
		return "", err
	}
	return k.Key(args)
}

var _ Keyer = managerKeyer{}

type managerKeyer struct{ *Manager }

func (mk managerKeyer) Driver() DriverName { return mk.DefaultDriver() }

// AsKeyer returns m as a [Keyer] whose Driver reports the current default.
func (m *Manager) AsKeyer() Keyer { return managerKeyer{m} }

func (m *Manager) resolveDefault() (Keyer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	k, ok := m.drivers[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: no keyer registered for default %q",
			ErrDriverNotFound, m.def)
	}
	return k, nil
}
