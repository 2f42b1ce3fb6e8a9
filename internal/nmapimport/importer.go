package nmapimport

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/bjb28/pws-api-wrapper/internal/events"
	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

// HostCreator creates hosts.
type HostCreator interface {
	Create(ctx context.Context, host *pws.Host) (*pws.Result, error)
}

// PortCreator creates ports.
type PortCreator interface {
	Create(ctx context.Context, port *pws.Port) (*pws.Result, error)
}

// Summary reports what an import did.
type Summary struct {
	HostsCreated  int      `json:"hosts_created"  yaml:"hosts_created"`
	HostsRejected int      `json:"hosts_rejected" yaml:"hosts_rejected"`
	PortsCreated  int      `json:"ports_created"  yaml:"ports_created"`
	PortsRejected int      `json:"ports_rejected" yaml:"ports_rejected"`
	PortsSkipped  int      `json:"ports_skipped"  yaml:"ports_skipped"`
	Messages      []string `json:"messages"       yaml:"messages"`
}

// Importer creates parsed candidates through the API.
type Importer struct {
	hosts     HostCreator
	ports     PortCreator
	publisher events.Publisher
	log       *log.Entry
}

// NewImporter creates an importer. publisher may be nil.
func NewImporter(hosts HostCreator, ports PortCreator, publisher events.Publisher, logger *log.Entry) *Importer {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}

	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}

	return &Importer{
		hosts:     hosts,
		ports:     ports,
		publisher: publisher,
		log:       logger,
	}
}

// Import creates each host and then its ports, in order. A rejected host
// skips its ports. The first transport or unexpected-status error stops
// the import and is returned with the summary so far.
func (i *Importer) Import(ctx context.Context, candidates []Candidate) (*Summary, error) {
	summary := &Summary{}

	for _, candidate := range candidates {
		entry := i.log.WithField("target", candidate.Host.Target())

		for _, skipped := range candidate.Skipped {
			entry.WithField("port", skipped).Warn("Skipping invalid port")
			summary.PortsSkipped++
			summary.Messages = append(summary.Messages, "Skipped port "+skipped)
		}

		result, err := i.hosts.Create(ctx, candidate.Host)
		if err != nil {
			return summary, fmt.Errorf("importing host %s: %w", candidate.Host.Target(), err)
		}

		summary.Messages = append(summary.Messages, result.Message)

		if !result.OK {
			entry.WithField("message", result.Message).Warn("Host rejected")
			summary.HostsRejected++

			continue
		}

		summary.HostsCreated++
		i.publish(ctx, candidate.Host, result)
		entry.WithField("id", candidate.Host.ID()).Info("Host created")

		err = i.importPorts(ctx, entry, candidate, summary)
		if err != nil {
			return summary, err
		}
	}

	return summary, nil
}

func (i *Importer) importPorts(ctx context.Context, entry *log.Entry, candidate Candidate, summary *Summary) error {
	for _, port := range candidate.Ports {
		err := port.Set("hid", candidate.Host.ID())
		if err != nil {
			return fmt.Errorf("assigning port %d to host: %w", port.Number(), err)
		}

		result, err := i.ports.Create(ctx, port)
		if err != nil {
			return fmt.Errorf("importing port %d on %s: %w", port.Number(), candidate.Host.Target(), err)
		}

		summary.Messages = append(summary.Messages, result.Message)

		if !result.OK {
			entry.WithFields(log.Fields{"port": port.Number(), "message": result.Message}).Warn("Port rejected")
			summary.PortsRejected++

			continue
		}

		summary.PortsCreated++
		i.publish(ctx, port, result)
		entry.WithFields(log.Fields{"port": port.Number(), "id": port.ID()}).Debug("Port created")
	}

	return nil
}

func (i *Importer) publish(ctx context.Context, entity pws.Entity, result *pws.Result) {
	err := i.publisher.Publish(ctx, events.NewEvent(entity, result))
	if err != nil {
		i.log.WithError(err).Warn("Failed to publish change event")
	}
}
