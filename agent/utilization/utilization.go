/*
Copyright 2023 AmidaWare Inc.

Licensed under the Tactical RMM License Version 1.0 (the “License”).
You may only use the Licensed Software in accordance with the License.
A copy of the License is available at:

https://license.tacticalrmm.com

*/

package utilization

import (
	"errors"
	"fmt"
	"time"

	"github.com/amidaware/cpuutilization/agent/parser"
	"github.com/amidaware/cpuutilization/agent/platform"
	"github.com/amidaware/cpuutilization/agent/system"
	"github.com/sirupsen/logrus"
)

var ErrUnknownPlatform = errors.New("unknown platform")

// ProcessError means the sampling command could not be launched or exited non zero.
type ProcessError struct {
	Command string
	Exit    int
	Stderr  string
	Err     error
}

func (e *ProcessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s: exit status %d", e.Command, e.Exit)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// Sample is one cpu utilization reading. Percent is not clamped to 100.
type Sample struct {
	Percent float64
	Family  platform.Family
	Command string
	Taken   time.Time
}

// Runner is what the service needs from system.Runner.
type Runner interface {
	Start(command string) error
	Wait() error
	Result() (system.ProcessResult, error)
}

type Option func(*Service)

// WithOSName replaces the source of the raw os name used for detection.
func WithOSName(f func() string) Option {
	return func(s *Service) {
		s.osName = f
	}
}

func WithRunner(f func(opts *system.CmdOptions) Runner) Option {
	return func(s *Service) {
		s.newRunner = f
	}
}

func WithCmdOptions(opts *system.CmdOptions) Option {
	return func(s *Service) {
		s.cmdOpts = opts
	}
}

type Service struct {
	logger    *logrus.Logger
	osName    func() string
	newRunner func(opts *system.CmdOptions) Runner
	cmdOpts   *system.CmdOptions
}

func New(logger *logrus.Logger, opts ...Option) *Service {
	s := &Service{
		logger: logger,
		osName: platform.OSName,
		newRunner: func(opts *system.CmdOptions) Runner {
			return system.NewRunner(opts)
		},
		cmdOpts: system.NewCMDOpts(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Family detects the platform family without running anything.
func (s *Service) Family() platform.Family {
	return platform.Detect(s.osName())
}

// Measure samples the cpu once. The error is ErrUnknownPlatform, a
// *ProcessError or a *parser.ParseError when no sample is available.
func (s *Service) Measure() (Sample, error) {
	raw := s.osName()
	family := platform.Detect(raw)
	s.logger.Debugf("Detected platform %s from %q", family, raw)

	spec, ok := platform.Lookup(family)
	if !ok {
		return Sample{}, fmt.Errorf("%w: %q", ErrUnknownPlatform, raw)
	}

	s.logger.Debugln("Running", spec.Command)
	r := s.newRunner(s.cmdOpts)
	if err := r.Start(spec.Command); err != nil {
		return Sample{}, err
	}
	waitErr := r.Wait()

	res, err := r.Result()
	if err != nil {
		return Sample{}, err
	}
	s.logger.Debugf("%s exited with %d", spec.Command, res.Exit)

	if waitErr != nil || !res.IsSuccess() {
		return Sample{}, &ProcessError{
			Command: spec.Command,
			Exit:    res.Exit,
			Stderr:  res.Stderr,
			Err:     waitErr,
		}
	}

	percent, err := parser.Parse(family, res.Stdout)
	if err != nil {
		return Sample{}, err
	}

	return Sample{
		Percent: percent,
		Family:  family,
		Command: spec.Command,
		Taken:   time.Now(),
	}, nil
}

// Get returns the current cpu utilization, or false when it cannot be measured.
// Reading a runner before it finished is a bug and panics.
func (s *Service) Get() (Sample, bool) {
	sample, err := s.Measure()
	if err != nil {
		if errors.Is(err, system.ErrIllegalState) {
			s.logger.Errorln("Utilization:", err)
			panic(err)
		}
		s.logger.Debugln("No cpu sample:", err)
		return Sample{}, false
	}
	return sample, true
}
