//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris
// +build aix darwin dragonfly freebsd linux netbsd openbsd solaris

package platform

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// OSName returns the kernel name, e.g. Linux, FreeBSD, Darwin or SunOS.
func OSName() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return runtime.GOOS
	}

	name := unix.ByteSliceToString(uts.Sysname[:])
	if name == "" {
		return runtime.GOOS
	}
	return name
}
