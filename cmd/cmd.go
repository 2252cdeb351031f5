// Package cmd provides the statsd-cli commands for sending metrics and benchmarking
package cmd

import (
	"github.com/relex/gotils/config"
)

func init() {
	config.AddParentCmdWithArgs("", "statsd-cli sends metrics, events and service checks to a statsd collector", &rootCmd, rootCmd.preRun, rootCmd.postRun)
	config.AddCmdWithArgs("send <name> <value>", "Send one metric", &sendCmd, sendCmd.run)
	config.AddCmdWithArgs("event <title> <text>", "Send one event", &eventCmd, eventCmd.run)
	config.AddCmdWithArgs("benchmark", "Benchmark the client send path", &benchCmd, benchCmd.run)
}

// Execute parses the command line and runs the specified command
func Execute() {
	config.Execute()
}
