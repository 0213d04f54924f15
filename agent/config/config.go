/*
Copyright 2023 AmidaWare Inc.

Licensed under the Tactical RMM License Version 1.0 (the “License”).
You may only use the Licensed Software in accordance with the License.
A copy of the License is available at:

https://license.tacticalrmm.com

*/

package config

import (
	"time"

	"github.com/amidaware/cpuutilization/agent/system"
	"github.com/spf13/viper"
)

const configName = "cpuutilization"

// Config is the optional on disk configuration. Every field is optional and
// the zero value means "use the platform default".
type Config struct {
	Shell     string
	ShellArgs []string
	Timeout   time.Duration
	OSName    string
	LogLevel  string
}

// NewConfig reads cpuutilization.json from the first of paths that has it,
// or from the default locations when no paths are given.
// A missing or unreadable file yields an empty config.
func NewConfig(paths ...string) *Config {
	if len(paths) == 0 {
		paths = configPaths()
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("json")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		return &Config{}
	}

	return &Config{
		Shell:     v.GetString("shell"),
		ShellArgs: v.GetStringSlice("shellargs"),
		Timeout:   v.GetDuration("timeout"),
		OSName:    v.GetString("osname"),
		LogLevel:  v.GetString("loglevel"),
	}
}

// CmdOptions layers the config over the platform defaults.
func (c *Config) CmdOptions() *system.CmdOptions {
	opts := system.NewCMDOpts()
	if c.Shell != "" {
		opts.Shell = c.Shell
	}
	if len(c.ShellArgs) > 0 {
		opts.ShellArgs = c.ShellArgs
	}
	if c.Timeout > 0 {
		opts.Timeout = c.Timeout
	}
	return opts
}
