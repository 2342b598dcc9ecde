package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/launchdarkly/synonym-registry/framework"

	"github.com/fatih/color"
)

var (
	okColor   = color.New(color.FgGreen).SprintFunc()
	failColor = color.New(color.FgHiRed).SprintFunc()
	skipColor = color.New(color.FgYellow).SprintFunc()
)

// ConsoleTestLogger prints "<name> OK" or "<name> fail: <message>" for every test.
type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
	reported             map[string]bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	if c.reported == nil {
		c.reported = make(map[string]bool)
	}
	c.reported[id.String()] = true
	lines := strings.Split(err.Error(), "\n")
	fmt.Fprintf(c.Out, "%s %s %s\n", id, failColor("fail:"), lines[0])
	for _, line := range lines[1:] {
		fmt.Fprintf(c.Out, "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, failed bool, debugOutput framework.CapturedOutput) {
	switch {
	case !failed:
		fmt.Fprintf(c.Out, "%s %s\n", id, okColor("OK"))
	case !c.reported[id.String()]:
		fmt.Fprintf(c.Out, "%s %s subtests failed\n", id, failColor("fail:"))
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.Out, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		fmt.Fprintf(c.Out, "%s %s\n", id, skipColor("SKIPPED"))
	} else {
		fmt.Fprintf(c.Out, "%s %s (%s)\n", id, skipColor("SKIPPED"), reason)
	}
}
