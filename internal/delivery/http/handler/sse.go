package handler

import (
	"bufio"
	"encoding/json"
	"fmt"
)

const (
	eventMessage = "message"
	eventError   = "error"
)

// writeEvent writes one server-sent event and flushes it to the client.
func writeEvent(w *bufio.Writer, event string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, b); err != nil {
		return err
	}
	return w.Flush()
}
