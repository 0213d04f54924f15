//go:build !windows
// +build !windows

package system

func NewCMDOpts() *CmdOptions {
	return &CmdOptions{
		Shell:     "/bin/sh",
		ShellArgs: []string{"-c"},
	}
}
