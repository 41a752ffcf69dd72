package api

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single API call.
type CallEvent struct {
	Method    string
	Path      string
	Status    int
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about API calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes API call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] api_call method=%s path=%s http_status=%d latency_ms=%d status=%s\n",
		ts, event.Method, event.Path, event.Status, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case isTimeout(err):
		return "TIMEOUT"
	case isUnauthorized(err):
		return "UNAUTHORIZED"
	case isUnavailable(err):
		return "UNAVAILABLE"
	case isInvalidResponse(err):
		return "INVALID_RESPONSE"
	default:
		return "API_ERROR"
	}
}
