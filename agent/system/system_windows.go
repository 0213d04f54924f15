/*
Copyright 2023 AmidaWare Inc.

Licensed under the Tactical RMM License Version 1.0 (the “License”).
You may only use the Licensed Software in accordance with the License.
A copy of the License is available at:

https://license.tacticalrmm.com

*/

package system

func NewCMDOpts() *CmdOptions {
	return &CmdOptions{
		Shell:     "cmd.exe",
		ShellArgs: []string{"/C"},
	}
}
