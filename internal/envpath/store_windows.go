//go:build windows

package envpath

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows/registry"
)

// RegistryStore persists the PATH value in a string value under a key of
// the current user's registry hive. Per-machine (HKLM) PATH edits are out
// of scope; only the current user's environment is mutated.
type RegistryStore struct {
	keyPath   string
	valueName string

	// valueType is the registry type observed on the last read, so a write
	// does not downgrade a REG_EXPAND_SZ value (and break %VAR% expansion
	// of entries other software owns) to a plain REG_SZ.
	valueType uint32
}

// NewUserEnvironmentStore returns the store for the current user's
// persisted environment, HKCU\Environment value "Path".
func NewUserEnvironmentStore() *RegistryStore {
	return NewRegistryStore(`Environment`, "Path")
}

// NewRegistryStore returns a store over an arbitrary HKCU key and value.
func NewRegistryStore(keyPath, valueName string) *RegistryStore {
	return &RegistryStore{keyPath: keyPath, valueName: valueName, valueType: registry.EXPAND_SZ}
}

func (s *RegistryStore) Read() (string, bool, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, s.keyPath, registry.QUERY_VALUE)
	if err != nil {
		return "", false, fmt.Errorf("open HKCU\\%s: %w", s.keyPath, err)
	}
	defer key.Close()

	value, valueType, err := key.GetStringValue(s.valueName)
	if err == registry.ErrNotExist {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s from HKCU\\%s: %w", s.valueName, s.keyPath, err)
	}

	s.valueType = valueType
	return value, true, nil
}

func (s *RegistryStore) Write(value string) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, s.keyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open HKCU\\%s: %w", s.keyPath, err)
	}
	defer key.Close()

	if s.valueType == registry.EXPAND_SZ {
		err = key.SetExpandStringValue(s.valueName, value)
	} else {
		err = key.SetStringValue(s.valueName, value)
	}
	if err != nil {
		return fmt.Errorf("write %s to HKCU\\%s: %w", s.valueName, s.keyPath, err)
	}

	broadcastEnvironmentChange()
	return nil
}

// broadcastEnvironmentChange sends WM_SETTINGCHANGE to every top-level
// window so shells opened after the write pick up the new PATH without a
// logoff. Already-running shells are unaffected either way.
func broadcastEnvironmentChange() {
	user32 := syscall.NewLazyDLL("user32.dll")
	sendMessageTimeout := user32.NewProc("SendMessageTimeoutW")

	const (
		hwndBroadcast   = 0xFFFF
		wmSettingChange = 0x001A
		smtoAbortIfHung = 0x0002
	)

	envStr, _ := syscall.UTF16PtrFromString("Environment")
	sendMessageTimeout.Call(
		uintptr(hwndBroadcast),
		uintptr(wmSettingChange),
		0,
		uintptr(unsafe.Pointer(envStr)),
		uintptr(smtoAbortIfHung),
		uintptr(5000),
		0,
	)
}
