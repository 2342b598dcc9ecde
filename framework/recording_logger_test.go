package framework

import (
	"fmt"
)

type recordingLogger struct {
	events []string
}

func (r *recordingLogger) TestStarted(id TestID) {
	r.events = append(r.events, fmt.Sprintf("start %s", id))
}

func (r *recordingLogger) TestError(id TestID, err error) {
	r.events = append(r.events, fmt.Sprintf("error %s: %s", id, err))
}

func (r *recordingLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	if failed {
		r.events = append(r.events, fmt.Sprintf("fail %s", id))
	} else {
		r.events = append(r.events, fmt.Sprintf("ok %s", id))
	}
}

func (r *recordingLogger) TestSkipped(id TestID, reason string) {
	r.events = append(r.events, fmt.Sprintf("skip %s (%s)", id, reason))
}
