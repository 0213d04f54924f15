/*
Copyright 2023 AmidaWare Inc.

Licensed under the Tactical RMM License Version 1.0 (the “License”).
You may only use the Licensed Software in accordance with the License.
A copy of the License is available at:

https://license.tacticalrmm.com

*/

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	goDebug "runtime/debug"
	"strconv"

	"github.com/amidaware/cpuutilization/agent/config"
	"github.com/amidaware/cpuutilization/agent/platform"
	"github.com/amidaware/cpuutilization/agent/system"
	"github.com/amidaware/cpuutilization/agent/utilization"
	rmm "github.com/amidaware/cpuutilization/shared"
	ps "github.com/elastic/go-sysinfo"
	"github.com/sirupsen/logrus"
	"github.com/ugorji/go/codec"
)

var (
	version = "0.1.0"
	log     = logrus.New()
	logFile *os.File
)

func main() {
	ver := flag.Bool("version", false, "Prints version")
	mode := flag.String("m", "sample", "The mode to run: sample, detect, command or list")
	logLevel := flag.String("log", "", "The log level")
	logTo := flag.String("logto", "stderr", "Where to log to: stderr, stdout or a file path")
	format := flag.String("format", "text", "Output format: text, json or msgpack")
	osName := flag.String("osname", "", "Use this os name instead of asking the kernel")
	flag.Parse()

	if *ver {
		ShowVersionInfo(version)
		return
	}

	cfg := config.NewConfig()
	if *logLevel == "" {
		*logLevel = cfg.LogLevel
	}
	setupLogging(logLevel, logTo)
	if logFile != nil {
		defer logFile.Close()
	}

	opts := []utilization.Option{utilization.WithCmdOptions(cfg.CmdOptions())}
	if *osName == "" {
		*osName = cfg.OSName
	}
	if *osName != "" {
		name := *osName
		opts = append(opts, utilization.WithOSName(func() string { return name }))
	}

	svc := utilization.New(log, opts...)
	log.Debugln("Host:", system.OsString())

	runMode(svc, *mode, *format)
}

// runMode prints the result of one -m mode to stdout.
func runMode(svc *utilization.Service, mode, format string) {
	switch mode {
	case "detect":
		fmt.Println(svc.Family())
	case "command":
		if spec, ok := platform.Lookup(svc.Family()); ok {
			fmt.Println(spec.Command)
		}
	case "list":
		for _, spec := range platform.Commands() {
			fmt.Printf("%-8s %s\n", spec.Family, spec.Command)
		}
	default:
		sample, ok := svc.Get()
		msg := newUtilizationMsg(sample, ok, svc.Family())
		if err := writeSample(os.Stdout, format, msg); err != nil {
			log.Errorln("Output:", err)
		}
	}
}

func newUtilizationMsg(s utilization.Sample, ok bool, family platform.Family) rmm.UtilizationMsg {
	msg := rmm.UtilizationMsg{
		Hostname:  hostname(),
		Family:    family.String(),
		Available: ok,
	}

	if ok {
		msg.Command = s.Command
		msg.Percent = s.Percent
		msg.Timestamp = s.Taken.Unix()
	} else if spec, found := platform.Lookup(family); found {
		msg.Command = spec.Command
	}
	return msg
}

// writeSample prints the percent, or nothing when unavailable, for text output.
func writeSample(w io.Writer, format string, msg rmm.UtilizationMsg) error {
	switch format {
	case "json":
		var out []byte
		enc := codec.NewEncoderBytes(&out, new(codec.JsonHandle))
		if err := enc.Encode(msg); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, string(out))
		return err
	case "msgpack":
		return codec.NewEncoder(w, new(codec.MsgpackHandle)).Encode(msg)
	case "text":
		if !msg.Available {
			return nil
		}
		_, err := fmt.Fprintln(w, strconv.FormatFloat(msg.Percent, 'f', -1, 64))
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func hostname() string {
	host, err := ps.Host()
	if err != nil {
		log.Debugln("Hostname:", err)
		return ""
	}
	return host.Info().Hostname
}

// ShowVersionInfo prints basic debugging info
func ShowVersionInfo(ver string) {
	fmt.Println("cpuutilization:", ver)
	fmt.Println("Arch:", runtime.GOARCH)
	fmt.Println("Platform:", platform.Current())
	bi, ok := goDebug.ReadBuildInfo()
	if ok {
		fmt.Println(bi.String())
	}
}

func setupLogging(level, to *string) {
	ll, err := logrus.ParseLevel(*level)
	if err != nil {
		ll = logrus.InfoLevel
	}
	log.SetLevel(ll)

	switch *to {
	case "stdout":
		log.SetOutput(os.Stdout)
	case "stderr", "":
		log.SetOutput(os.Stderr)
	default:
		logFile, err = os.OpenFile(*to, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Errorln("Log file:", err)
			return
		}
		log.SetOutput(logFile)
	}
}
