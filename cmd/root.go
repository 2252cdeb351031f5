package cmd

import (
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

	"github.com/relex/gotils/logger"
)

// rootCommandState holds profiling options shared by all subcommands
type rootCommandState struct {
	CPUProfile string `name:"cpuprofile" help:"Write CPU profile to file."`
	MemProfile string `name:"memprofile" help:"Write memory profile to file."`
	Trace      string `help:"Write trace to file."`

	openFiles []*os.File
	finishers []func()
}

var rootCmd rootCommandState

func (cmd *rootCommandState) preRun() {
	if cmd.CPUProfile != "" {
		f := cmd.mustCreate("CPU profile", cmd.CPUProfile)
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Fatalf("failed to start CPU profiling: %s", err.Error())
		}
		cmd.finishers = append(cmd.finishers, pprof.StopCPUProfile)
	}

	if cmd.MemProfile != "" {
		f := cmd.mustCreate("memory profile", cmd.MemProfile)
		cmd.finishers = append(cmd.finishers, func() {
			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				logger.Errorf("failed to write memory profile: %s", err.Error())
			}
		})
	}

	if cmd.Trace != "" {
		f := cmd.mustCreate("trace", cmd.Trace)
		if err := trace.Start(f); err != nil {
			logger.Fatalf("failed to start tracing: %s", err.Error())
		}
		cmd.finishers = append(cmd.finishers, trace.Stop)
	}
}

func (cmd *rootCommandState) postRun() {
	for _, finish := range cmd.finishers {
		finish()
	}
	for _, f := range cmd.openFiles {
		f.Close()
	}
}

func (cmd *rootCommandState) mustCreate(what string, path string) *os.File {
	f, err := os.Create(path)
	if err != nil {
		logger.Fatalf("failed to create %s %s: %s", what, path, err.Error())
	}
	logger.Infof("start writing %s to %s", what, path)
	cmd.openFiles = append(cmd.openFiles, f)
	return f
}
