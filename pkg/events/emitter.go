package events

import (
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
)

const DefaultSubject = "taxport.export"

// ExportEvent is published at export lifecycle boundaries so external
// consumers (a dashboard, an audit log) can follow long-running exports.
type ExportEvent struct {
	Type      string `json:"type"` // "started", "page", "completed", "failed"
	Platform  string `json:"platform"`
	Fetched   int    `json:"fetched"`
	Requests  int    `json:"requests,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

type Emitter interface {
	EmitStarted(platform string) error
	EmitPage(platform string, fetched int) error
	EmitCompleted(platform string, fetched, requests int) error
	EmitFailed(platform string, err error) error
	Close()
}

type natsEmitter struct {
	conn    *nats.Conn
	subject string
}

// NewNATSEmitter connects to the given NATS server. Subject defaults to
// DefaultSubject when empty.
func NewNATSEmitter(url, subject string) (Emitter, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	if subject == "" {
		subject = DefaultSubject
	}
	return &natsEmitter{conn: conn, subject: subject}, nil
}

func (e *natsEmitter) EmitStarted(platform string) error {
	return e.emit(ExportEvent{Type: "started", Platform: platform})
}

func (e *natsEmitter) EmitPage(platform string, fetched int) error {
	return e.emit(ExportEvent{Type: "page", Platform: platform, Fetched: fetched})
}

func (e *natsEmitter) EmitCompleted(platform string, fetched, requests int) error {
	return e.emit(ExportEvent{Type: "completed", Platform: platform, Fetched: fetched, Requests: requests})
}

func (e *natsEmitter) EmitFailed(platform string, err error) error {
	event := ExportEvent{Type: "failed", Platform: platform}
	if err != nil {
		event.Error = err.Error()
	}
	return e.emit(event)
}

func (e *natsEmitter) emit(event ExportEvent) error {
	event.Timestamp = time.Now().UTC().Unix()
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return e.conn.Publish(e.subject, data)
}

func (e *natsEmitter) Close() {
	if e.conn != nil {
		e.conn.Close()
	}
}

// NopEmitter discards all events. Used when no event sink is configured.
type NopEmitter struct{}

func (NopEmitter) EmitStarted(string) error             { return nil }
func (NopEmitter) EmitPage(string, int) error           { return nil }
func (NopEmitter) EmitCompleted(string, int, int) error { return nil }
func (NopEmitter) EmitFailed(string, error) error       { return nil }
func (NopEmitter) Close()                               {}
