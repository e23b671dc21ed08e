//go:build windows

package envpath

import (
	"testing"

	"golang.org/x/sys/windows/registry"
)

const testKeyPath = `Software\WasmerInstallerTest`

// newScratchStore creates a disposable HKCU key for the duration of the
// test so the real user environment is never touched.
func newScratchStore(t *testing.T) *RegistryStore {
	t.Helper()

	key, _, err := registry.CreateKey(registry.CURRENT_USER, testKeyPath, registry.ALL_ACCESS)
	if err != nil {
		t.Fatalf("failed to create scratch key: %v", err)
	}
	key.Close()

	t.Cleanup(func() {
		if err := registry.DeleteKey(registry.CURRENT_USER, testKeyPath); err != nil {
			t.Errorf("failed to delete scratch key: %v", err)
		}
	})

	return NewRegistryStore(testKeyPath, "Path")
}

// TestRegistryStoreAbsentValue verifies that a value that was never
// written reads back as absent rather than as an error.
func TestRegistryStoreAbsentValue(t *testing.T) {
	store := newScratchStore(t)

	value, ok, err := store.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if ok {
		t.Errorf("Read() reported an absent value as present: %q", value)
	}
}

// TestRegistryStoreRoundTrip verifies that a written value reads back
// byte-for-byte.
func TestRegistryStoreRoundTrip(t *testing.T) {
	store := newScratchStore(t)

	const want = `C:\A;%SystemRoot%\system32;C:\B;`
	if err := store.Write(want); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, ok, err := store.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !ok {
		t.Fatal("Read() reported the written value as absent")
	}
	if got != want {
		t.Errorf("Read() = %q; want %q", got, want)
	}
}

// TestRegistryStoreManagerCycle runs the add/remove cycle against a real
// registry value.
func TestRegistryStoreManagerCycle(t *testing.T) {
	store := newScratchStore(t)
	mgr := newTestManager(store)

	mgr.AddPath(`C:\WasmerTest\bin`)
	value, ok, err := store.Read()
	if err != nil || !ok {
		t.Fatalf("Read() after AddPath: value=%q ok=%v err=%v", value, ok, err)
	}
	if _, found := Locate(value, `C:\WasmerTest\bin`); !found {
		t.Fatalf("added entry missing from %q", value)
	}

	mgr.RemovePath(`c:\wasmertest\BIN`)
	value, _, err = store.Read()
	if err != nil {
		t.Fatalf("Read() after RemovePath: %v", err)
	}
	if _, found := Locate(value, `C:\WasmerTest\bin`); found {
		t.Errorf("removed entry still present in %q", value)
	}
}
