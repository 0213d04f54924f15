/*
Copyright 2023 AmidaWare Inc.

Licensed under the Tactical RMM License Version 1.0 (the “License”).
You may only use the Licensed Software in accordance with the License.
A copy of the License is available at:

https://license.tacticalrmm.com

*/

package platform

// Family is the group of operating systems that share a sampling command
// and an output format.
type Family int

const (
	Unknown Family = iota
	Linux
	BSD
	Darwin
	Solaris
	BeOS
	Windows
)

var familyNames = map[Family]string{
	Unknown: "unknown",
	Linux:   "linux",
	BSD:     "bsd",
	Darwin:  "darwin",
	Solaris: "solaris",
	BeOS:    "beos",
	Windows: "windows",
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return familyNames[Unknown]
}

// Families returns every known family except Unknown, in detection order.
func Families() []Family {
	ret := make([]Family, 0, len(detectOrder))
	for _, m := range detectOrder {
		ret = append(ret, m.family)
	}
	return ret
}
