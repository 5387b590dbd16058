package engine

import (
	"context"
	"fmt"

	"github.com/abhisek/lingualearn/internal/store"
)

// save writes the whole user record. Failures are reported as warnings;
// the in-memory state stays authoritative for the rest of the run.
func (e *Engine) save() {
	if e.users == nil || e.user == nil {
		return
	}
	if err := e.users.Save(context.Background(), e.userKey, e.user); err != nil {
		fmt.Fprintf(e.warn, "warning: failed to save progress: %v\n", err)
	}
}

// record appends a progress event stamped with this run's session id.
func (e *Engine) record(data store.ProgressEventData) {
	if e.events == nil {
		return
	}
	data.SessionID = e.sessionID
	if err := e.events.AppendProgressEvent(context.Background(), data); err != nil {
		fmt.Fprintf(e.warn, "warning: failed to log %s event: %v\n", data.Kind, err)
	}
}
