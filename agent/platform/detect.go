/*
Copyright 2023 AmidaWare Inc.

Licensed under the Tactical RMM License Version 1.0 (the “License”).
You may only use the Licensed Software in accordance with the License.
A copy of the License is available at:

https://license.tacticalrmm.com

*/

package platform

import "strings"

type familyMatch struct {
	family Family
	tokens []string
}

// Tokens are plain substrings, so when a name matches more than one family
// the earliest entry wins. Keep this order.
var detectOrder = []familyMatch{
	{Linux, []string{"linux", "cygwin"}},
	{BSD, []string{"bsd"}},
	{Darwin, []string{"darwin"}},
	{Solaris, []string{"solaris", "sunos"}},
	{BeOS, []string{"beos", "haiku"}},
	{Windows, []string{"windows"}},
}

// Detect classifies a raw OS name such as the kernel name reported by uname.
func Detect(rawOSName string) Family {
	name := strings.ToLower(strings.TrimSpace(rawOSName))
	if name == "" {
		return Unknown
	}

	for _, m := range detectOrder {
		for _, tok := range m.tokens {
			if strings.Contains(name, tok) {
				return m.family
			}
		}
	}
	return Unknown
}

// Current detects the family of the running host.
func Current() Family {
	return Detect(OSName())
}
