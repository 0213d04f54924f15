package system

// runCommand starts command on a fresh runner and waits for it.
func runCommand(opts *CmdOptions, command string) (ProcessResult, error) {
	r := NewRunner(opts)
	if err := r.Start(command); err != nil {
		return ProcessResult{}, err
	}
	if err := r.Wait(); err != nil {
		res, _ := r.Result()
		return res, err
	}
	return r.Result()
}
