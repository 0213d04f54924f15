/*
Copyright 2023 AmidaWare Inc.

Licensed under the Tactical RMM License Version 1.0 (the “License”).
You may only use the Licensed Software in accordance with the License.
A copy of the License is available at:

https://license.tacticalrmm.com

*/

package platform

// CommandSpec is the external command used to sample a family's cpu usage.
// Every command except wmic samples twice so the tool computes the delta itself.
type CommandSpec struct {
	Family  Family
	Command string
}

var commands = []CommandSpec{
	{Linux, "top -b -n 2 -d 1"},
	{BSD, "top -b -P -s 2 -d 2"},
	{Darwin, "top -F -l 2 -i 2 -n 0"},
	{Solaris, "top -b -s 2 -d 2"},
	{BeOS, "top -d -i 2 -n 2"},
	{Windows, "wmic cpu get loadpercentage"},
}

func Lookup(f Family) (CommandSpec, bool) {
	for _, c := range commands {
		if c.Family == f {
			return c, true
		}
	}
	return CommandSpec{}, false
}

func Commands() []CommandSpec {
	ret := make([]CommandSpec, len(commands))
	copy(ret, commands)
	return ret
}
