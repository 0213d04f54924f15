/*
Copyright 2023 AmidaWare Inc.

Licensed under the Tactical RMM License Version 1.0 (the “License”).
You may only use the Licensed Software in accordance with the License.
A copy of the License is available at:

https://license.tacticalrmm.com

*/

package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/amidaware/cpuutilization/agent/platform"
)

var (
	ErrUnsupported    = errors.New("no parse rule for platform")
	ErrMarkerNotFound = errors.New("marker not found")
	ErrNoToken        = errors.New("expected token missing")
	ErrBadNumber      = errors.New("token is not a number")
)

type ParseError struct {
	Family platform.Family
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s output: %v", e.Family, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse turns the captured output of a family's sampling command into a
// utilization percentage. Errors are always *ParseError.
func Parse(f platform.Family, out string) (float64, error) {
	rule, ok := RuleFor(f)
	if !ok {
		return 0, &ParseError{Family: f, Err: ErrUnsupported}
	}

	v, err := rule.Extract(out)
	if err != nil {
		return 0, &ParseError{Family: f, Err: err}
	}
	return v, nil
}

// Extract applies the rule to out.
func (r Rule) Extract(out string) (float64, error) {
	text := out
	if r.Marker != "" {
		parts := strings.Split(out, r.Marker)
		if len(parts) <= r.Segment {
			return 0, fmt.Errorf("%w: %q occurs %d times, need %d", ErrMarkerNotFound, r.Marker, len(parts)-1, r.Segment)
		}
		text = parts[r.Segment]
	}

	switch r.Strategy {
	case lastToken:
		if r.End != "" {
			text, _, _ = strings.Cut(text, r.End)
		}
		tokens := strings.Fields(text)
		if len(tokens) == 0 {
			return 0, ErrNoToken
		}
		return parseNumber(tokens[len(tokens)-1])
	default:
		line, _, _ := strings.Cut(text, "\n")
		tokens := strings.Split(line, ",")

		var sum float64
		for _, field := range r.Fields {
			if field.Index >= len(tokens) {
				return 0, fmt.Errorf("%w: field %d (%s)", ErrNoToken, field.Index, field.Label)
			}
			num, _, _ := strings.Cut(tokens[field.Index], field.Label)
			v, err := parseNumber(num)
			if err != nil {
				return 0, err
			}
			sum += v
		}
		return sum, nil
	}
}

func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, s)
	}
	return v, nil
}
