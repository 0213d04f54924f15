/*
Copyright 2023 AmidaWare Inc.

Licensed under the Tactical RMM License Version 1.0 (the “License”).
You may only use the Licensed Software in accordance with the License.
A copy of the License is available at:

https://license.tacticalrmm.com

*/

package parser

import "github.com/amidaware/cpuutilization/agent/platform"

type strategy int

const (
	// sum labelled comma separated fields on the first line of the segment
	commaFields strategy = iota
	// take the last whitespace separated token before End
	lastToken
)

// Field is a comma separated token position and the unit label that follows the number.
type Field struct {
	Index int
	Label string
}

// Rule describes where a family's tool prints its busy percentages.
// Segment is the index into the output split on Marker, so 2 is the text
// after the second occurrence. An empty Marker uses the whole output.
type Rule struct {
	Family   platform.Family
	Marker   string
	Segment  int
	End      string
	Fields   []Field
	Strategy strategy
}

var rules = []Rule{
	{
		Family:  platform.Linux,
		Marker:  "%Cpu(s):",
		Segment: 2,
		Fields:  []Field{{0, "us"}, {1, "sy"}, {2, "ni"}},
	},
	{
		Family:  platform.BSD,
		Marker:  "CPU:",
		Segment: 1,
		Fields:  []Field{{0, "% user"}, {1, "% nice"}, {2, "% system"}},
	},
	{
		Family:  platform.Darwin,
		Marker:  "CPU usage:",
		Segment: 2,
		Fields:  []Field{{0, "% user"}, {1, "% sys"}},
	},
	{
		// field 0 is skipped on purpose, only user, kernel and iowait count
		Family:  platform.Solaris,
		Marker:  "CPU states: ",
		Segment: 2,
		Fields:  []Field{{1, "% user"}, {2, "% kernel"}, {3, "% iowait"}},
	},
	{
		Family:   platform.BeOS,
		Marker:   "------",
		Segment:  1,
		End:      "% TOTAL",
		Strategy: lastToken,
	},
	{
		Family:   platform.Windows,
		Strategy: lastToken,
	},
}

// RuleFor returns the parse rule of a family.
func RuleFor(f platform.Family) (Rule, bool) {
	for _, r := range rules {
		if r.Family == f {
			return r, true
		}
	}
	return Rule{}, false
}
