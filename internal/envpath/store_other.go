//go:build !windows

package envpath

import "fmt"

// UnsupportedStore stands in for the registry store on platforms without a
// per-user registry hive. Every operation fails, which the Manager absorbs
// as a logged diagnostic.
type UnsupportedStore struct{}

// NewUserEnvironmentStore returns a store whose operations always fail;
// persisted per-user environment editing is Windows-only.
func NewUserEnvironmentStore() *UnsupportedStore {
	return &UnsupportedStore{}
}

func (s *UnsupportedStore) Read() (string, bool, error) {
	return "", false, fmt.Errorf("persisted environment is only available on windows")
}

func (s *UnsupportedStore) Write(value string) error {
	return fmt.Errorf("persisted environment is only available on windows")
}
