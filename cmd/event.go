package cmd

import (
	"github.com/relex/gotils/logger"
	"github.com/relex/statsd-client/line"
)

type eventCommandState struct {
	Config    string `help:"Client configuration file path (YAML); empty for UDP to localhost:8125"`
	Hostname  string `help:"Event hostname"`
	Priority  string `help:"Event priority: normal or low"`
	AlertType string `name:"alerttype" help:"Alert type: info, warning, error or success"`
	Tags      string `help:"Comma-separated tags in key:value form"`
}

var eventCmd eventCommandState

func (cmd *eventCommandState) run(args []string) {
	client := newClientFromFlags(cmd.Config, "statsdcli_event_")

	client.Event(line.Event{
		Title:     args[0],
		Text:      args[1],
		Hostname:  cmd.Hostname,
		Priority:  cmd.Priority,
		AlertType: cmd.AlertType,
	}, splitTags(cmd.Tags), func(err error) {
		if err != nil {
			logger.Fatalf("failed to send event: %s", err.Error())
		}
	})
	if err := client.Close(); err != nil {
		logger.Fatalf("failed to close: %s", err.Error())
	}
	logger.Infof("sent event '%s'", args[0])
}
