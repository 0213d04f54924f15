/*
Copyright 2023 AmidaWare Inc.

Licensed under the Tactical RMM License Version 1.0 (the “License”).
You may only use the Licensed Software in accordance with the License.
A copy of the License is available at:

https://license.tacticalrmm.com

*/

package system

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/amidaware/cpuutilization/agent/utils"
	gocmd "github.com/go-cmd/cmd"
	psHost "github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/process"
)

var (
	ErrIllegalState = errors.New("wait needs to be called before any info on the process can be gotten")
	ErrRunnerReused = errors.New("runner already started, create a new one per command")
	ErrNotStarted   = errors.New("runner was never started")
)

type runState int

const (
	stateNew runState = iota
	stateStarted
	stateFinished
)

// chunkBuffer keeps every write as its own chunk so the stream is joined once
// after the process exits instead of being split into lines.
type chunkBuffer struct {
	chunks [][]byte
}

func (c *chunkBuffer) Write(p []byte) (int, error) {
	b := make([]byte, len(p))
	copy(b, p)
	c.chunks = append(c.chunks, b)
	return len(p), nil
}

func (c *chunkBuffer) Bytes() []byte {
	return bytes.Join(c.chunks, nil)
}

// Runner runs a single shell command. It is not reusable.
type Runner struct {
	opts    CmdOptions
	state   runState
	command string

	envCmd     *gocmd.Cmd
	statusChan <-chan gocmd.Status
	cancel     context.CancelFunc

	stdout chunkBuffer
	stderr chunkBuffer

	result ProcessResult
	err    error
}

func NewRunner(opts *CmdOptions) *Runner {
	if opts == nil {
		opts = NewCMDOpts()
	}
	return &Runner{opts: *opts}
}

// Start launches the command under the configured shell and returns immediately.
// Launch failures are reported by Wait.
func (r *Runner) Start(command string) error {
	if r.state != stateNew {
		return ErrRunnerReused
	}
	r.command = command

	// go-cmd buffers by line, which loses the exact line endings, so both
	// streams are redirected into chunk buffers right before exec.
	cmdOptions := gocmd.Options{
		Buffered:  false,
		Streaming: false,
		BeforeExec: []func(cmd *exec.Cmd){
			func(cmd *exec.Cmd) {
				cmd.Stdout = &r.stdout
				cmd.Stderr = &r.stderr
			},
		},
	}

	args := append(append([]string{}, r.opts.ShellArgs...), command)
	r.envCmd = gocmd.NewCmdOptions(cmdOptions, r.opts.Shell, args...)
	r.statusChan = r.envCmd.Start()
	r.state = stateStarted

	if r.opts.Timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), r.opts.Timeout)
		r.cancel = cancel
		go func() {
			<-ctx.Done()
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				pid := r.envCmd.Status().PID
				KillProc(int32(pid))
			}
		}()
	}

	return nil
}

// Wait blocks until the child exits and captures its output.
// A non-nil error means the process could not be run to completion.
func (r *Runner) Wait() error {
	switch r.state {
	case stateNew:
		return ErrNotStarted
	case stateFinished:
		return r.err
	}

	status := <-r.statusChan
	if r.cancel != nil {
		r.cancel()
	}

	exit := status.Exit
	if status.Error != nil {
		r.err = fmt.Errorf("%s: %w", r.command, status.Error)
		if exit == 0 {
			exit = -1
		}
	}

	r.result = ProcessResult{
		Command: r.command,
		Exit:    exit,
		Stdout:  utils.Chomp(utils.DecodeOutput(r.stdout.Bytes())),
		Stderr:  utils.Chomp(utils.DecodeOutput(r.stderr.Bytes())),
	}
	r.state = stateFinished

	return r.err
}

func (r *Runner) Result() (ProcessResult, error) {
	if r.state != stateFinished {
		return ProcessResult{}, fmt.Errorf("result: %w", ErrIllegalState)
	}
	return r.result, nil
}

func (r *Runner) Stdout() (string, error) {
	res, err := r.Result()
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}

func (r *Runner) Stderr() (string, error) {
	res, err := r.Result()
	if err != nil {
		return "", err
	}
	return res.Stderr, nil
}

func (r *Runner) Combined() (string, error) {
	res, err := r.Result()
	if err != nil {
		return "", err
	}
	return res.Combined(), nil
}

func (r *Runner) IsSuccess() (bool, error) {
	res, err := r.Result()
	if err != nil {
		return false, err
	}
	return res.IsSuccess(), nil
}

func OsString() string {
	h, err := psHost.Info()
	if err != nil {
		return "error getting host info"
	}

	return fmt.Sprintf("%s %s %s %s", strings.Title(h.Platform), h.PlatformVersion, h.KernelArch, h.KernelVersion)
}

// KillProc kills a process and its children
func KillProc(pid int32) error {
	p, err := process.NewProcess(pid)
	if err != nil {
		return err
	}

	children, err := p.Children()
	if err == nil {
		for _, child := range children {
			if err := child.Kill(); err != nil {
				continue
			}
		}
	}

	if err := p.Kill(); err != nil {
		return err
	}

	return nil
}
