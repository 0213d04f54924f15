/*
Copyright 2023 AmidaWare Inc.

Licensed under the Tactical RMM License Version 1.0 (the “License”).
You may only use the Licensed Software in accordance with the License.
A copy of the License is available at:

https://license.tacticalrmm.com

*/

package system

import "time"

// CmdOptions controls how a Runner launches its command.
// The command string is appended to ShellArgs, e.g. /bin/sh -c 'top -b -n 2 -d 1'.
type CmdOptions struct {
	Shell     string
	ShellArgs []string
	// Timeout of zero blocks until the child exits on its own.
	Timeout time.Duration
}

// ProcessResult is the captured outcome of a finished command.
type ProcessResult struct {
	Command string
	Exit    int
	Stdout  string
	Stderr  string
}

func (p ProcessResult) IsSuccess() bool {
	return p.Exit == 0
}

// Combined returns stdout and stderr joined by a newline.
func (p ProcessResult) Combined() string {
	return p.Stdout + "\n" + p.Stderr
}
