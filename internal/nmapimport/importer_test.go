package nmapimport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjb28/pws-api-wrapper/internal/events"
	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

var errTransport = errors.New("connection reset")

type fakeHosts struct {
	reject map[string]bool
	fail   map[string]bool
	next   int
}

func (f *fakeHosts) Create(_ context.Context, host *pws.Host) (*pws.Result, error) {
	if f.fail[host.Target()] {
		return nil, errTransport
	}

	if f.reject[host.Target()] {
		return pws.Rejected(pws.ActionCreated, http.StatusBadRequest, &pws.APIError{Msg: "Duplicate host"}), nil
	}

	f.next++

	err := host.SetID(fmt.Sprintf("host%04d", f.next))
	if err != nil {
		return nil, err
	}

	return pws.Succeeded(host, pws.ActionCreated, http.StatusOK), nil
}

type fakePorts struct {
	created []*pws.Port
	reject  map[int]bool
}

func (f *fakePorts) Create(_ context.Context, port *pws.Port) (*pws.Result, error) {
	if f.reject[port.Number()] {
		return pws.Rejected(pws.ActionCreated, http.StatusBadRequest, &pws.APIError{Msg: "Invalid port"}), nil
	}

	err := port.SetID(fmt.Sprintf("port%04d", len(f.created)+1))
	if err != nil {
		return nil, err
	}

	f.created = append(f.created, port)

	return pws.Succeeded(port, pws.ActionCreated, http.StatusOK), nil
}

type recordingPublisher struct {
	subjects []string
}

func (r *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	r.subjects = append(r.subjects, events.Subject("pws", event))

	return nil
}

func (r *recordingPublisher) Close() error { return nil }

func testLogger() (*log.Entry, *bytes.Buffer) {
	var out bytes.Buffer

	logger := log.New()
	logger.SetOutput(&out)
	logger.SetLevel(log.DebugLevel)

	return log.NewEntry(logger), &out
}

func loadCandidates(t *testing.T) []Candidate {
	t.Helper()

	candidates, err := ParseFile("testdata/scan.xml", "46yEw36g")
	require.NoError(t, err)

	return candidates
}

func TestImporter_Import(t *testing.T) {
	t.Parallel()

	hosts := &fakeHosts{}
	ports := &fakePorts{reject: map[int]bool{80: true}}
	publisher := &recordingPublisher{}
	logger, out := testLogger()

	summary, err := NewImporter(hosts, ports, publisher, logger).Import(context.Background(), loadCandidates(t))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.HostsCreated)
	assert.Equal(t, 0, summary.HostsRejected)
	assert.Equal(t, 2, summary.PortsCreated)
	assert.Equal(t, 1, summary.PortsRejected)
	assert.Equal(t, 1, summary.PortsSkipped)

	require.Len(t, ports.created, 2)
	assert.Equal(t, "host0001", ports.created[0].HostID())
	assert.Equal(t, "host0002", ports.created[1].HostID())

	assert.Contains(t, summary.Messages, "Host 192.168.1.1 (host0001) created.")
	assert.Contains(t, summary.Messages, "Port 22 (port0001) created.")
	assert.Contains(t, summary.Messages, "Error: Invalid port")

	assert.Equal(t, []string{
		"pws.hosts.created",
		"pws.ports.created",
		"pws.hosts.created",
		"pws.ports.created",
	}, publisher.subjects)

	assert.Contains(t, out.String(), "Skipping invalid port")
	assert.Contains(t, out.String(), "Port rejected")
}

func TestImporter_RejectedHostSkipsPorts(t *testing.T) {
	t.Parallel()

	hosts := &fakeHosts{reject: map[string]bool{"192.168.1.1": true}}
	ports := &fakePorts{}
	logger, _ := testLogger()

	summary, err := NewImporter(hosts, ports, nil, logger).Import(context.Background(), loadCandidates(t))
	require.NoError(t, err)

	assert.Equal(t, 1, summary.HostsRejected)
	assert.Equal(t, 1, summary.HostsCreated)
	require.Len(t, ports.created, 1)
	assert.Equal(t, 161, ports.created[0].Number())
	assert.Contains(t, summary.Messages, "Error: Duplicate host")
}

func TestImporter_StopsOnTransportError(t *testing.T) {
	t.Parallel()

	hosts := &fakeHosts{fail: map[string]bool{"192.168.1.2": true}}
	ports := &fakePorts{}
	logger, _ := testLogger()

	summary, err := NewImporter(hosts, ports, nil, logger).Import(context.Background(), loadCandidates(t))
	require.ErrorIs(t, err, errTransport)
	assert.Contains(t, err.Error(), "192.168.1.2")
	assert.Equal(t, 1, summary.HostsCreated)
	assert.Equal(t, 2, summary.PortsCreated)
}
