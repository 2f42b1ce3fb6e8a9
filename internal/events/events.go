// Package events publishes change notifications for successful mutations.
//
// Events are JSON documents published on "<prefix>.<resource>.<action>",
// for example "pws.hosts.created".
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/bjb28/pws-api-wrapper/internal/constants"
	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

// ErrNoURL is returned when a NATS publisher is built without a server URL.
var ErrNoURL = errors.New("NATS URL is required")

// Event describes one accepted mutation.
type Event struct {
	Resource string         `json:"resource"`
	Action   pws.Action     `json:"action"`
	ID       string         `json:"id"`
	Label    string         `json:"label"`
	Status   int            `json:"status"`
	Message  string         `json:"message"`
	Data     map[string]any `json:"data,omitempty"`
	Time     time.Time      `json:"time"`
}

// NewEvent builds the event for entity after result. Deletions carry no
// data.
func NewEvent(entity pws.Entity, result *pws.Result) Event {
	event := Event{
		Resource: entity.Kind().Plural,
		Action:   result.Action,
		ID:       entity.ID(),
		Label:    entity.Label(),
		Status:   result.StatusCode,
		Message:  result.Message,
		Time:     time.Now().UTC(),
	}

	if result.Action != pws.ActionDeleted {
		event.Data = entity.ToMap()
	}

	return event
}

// Subject returns the subject event is published on.
func Subject(prefix string, event Event) string {
	prefix = strings.Trim(prefix, ".")
	if prefix == "" {
		prefix = constants.DefaultSubjectPrefix
	}

	return fmt.Sprintf("%s.%s.%s", prefix, event.Resource, event.Action)
}

// Publisher sends events somewhere.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func (NopPublisher) Close() error { return nil }

// NATSPublisher publishes events to a NATS server.
type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
}

// NewNATSPublisher connects to url. Extra options are passed to
// nats.Connect after the defaults.
func NewNATSPublisher(url, prefix string, opts ...nats.Option) (*NATSPublisher, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrNoURL
	}

	options := append([]nats.Option{
		nats.Name(constants.DefaultUserAgent),
		nats.Timeout(constants.EventPublishTimeout),
	}, opts...)

	conn, err := nats.Connect(url, options...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}

	return &NATSPublisher{conn: conn, prefix: prefix}, nil
}

// Publish sends event and waits for the server to acknowledge the flush.
func (p *NATSPublisher) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}

	subject := Subject(p.prefix, event)

	err = p.conn.Publish(subject, data)
	if err != nil {
		return fmt.Errorf("publishing %s: %w", subject, err)
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, constants.EventPublishTimeout)
		defer cancel()
	}

	err = p.conn.FlushWithContext(ctx)
	if err != nil {
		return fmt.Errorf("flushing %s: %w", subject, err)
	}

	return nil
}

// Close drains pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	err := p.conn.Drain()
	if err != nil {
		p.conn.Close()

		return fmt.Errorf("draining NATS connection: %w", err)
	}

	return nil
}

// Open returns a NATS publisher when url is set and a NopPublisher
// otherwise.
func Open(url, prefix string) (Publisher, error) {
	if strings.TrimSpace(url) == "" {
		return NopPublisher{}, nil
	}

	return NewNATSPublisher(url, prefix)
}

var (
	_ Publisher = NopPublisher{}
	_ Publisher = (*NATSPublisher)(nil)
)
