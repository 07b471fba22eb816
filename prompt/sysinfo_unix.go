//go:build unix

package prompt

import "golang.org/x/sys/unix"

// osVersion returns the kernel release from uname, or "Unknown" when the
// syscall fails.
func osVersion() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "Unknown"
	}
	return unix.ByteSliceToString(uts.Release[:])
}
