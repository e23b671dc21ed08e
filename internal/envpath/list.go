// Package envpath maintains the persisted per-user PATH value: a single
// semicolon-delimited string of directory paths shared with every other
// program on the machine. Operations work on the raw delimited string so
// that entries the installer does not own survive byte-for-byte (no
// reordering, no trimming, no case normalization).
package envpath

import "strings"

// ListSeparator delimits directory entries in the persisted PATH value.
// Directory paths must not contain it; no escaping is supported.
const ListSeparator = ";"

// Locate reports the zero-based offset of dir within value, compared
// case-insensitively. Both sides are wrapped in separators before matching
// so entries at the start or end of the value are found, which means the
// returned offset is relative to the wrapped value (one greater than the
// offset of the entry itself). The second return is false when dir does not
// occur as a whole entry.
func Locate(value, dir string) (int, bool) {
	haystack := ListSeparator + strings.ToUpper(value) + ListSeparator
	needle := ListSeparator + strings.ToUpper(dir) + ListSeparator

	offset := strings.Index(haystack, needle)
	if offset < 0 {
		return 0, false
	}
	return offset, true
}

// Append returns value with dir appended as a new delimited entry. It does
// not check for duplicates; callers keep the no-duplicate invariant by
// consulting Locate first.
func Append(value, dir string) string {
	return value + ListSeparator + dir + ListSeparator
}

// RemoveAt returns value with the entry of length entryLen at the wrapped
// offset pos deleted, together with the separator adjoining it. pos is the
// offset returned by Locate. An entry that sits at the very start of a
// pre-existing value with no separator of its own is left in place, the
// same way the deletion primitive of the shipped installer ignored an
// out-of-range start index.
func RemoveAt(value string, pos, entryLen int) string {
	start := pos - 1
	if start < 0 || start >= len(value) {
		return value
	}
	end := start + entryLen + 1
	if end > len(value) {
		end = len(value)
	}
	return value[:start] + value[end:]
}
