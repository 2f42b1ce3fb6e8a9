package commands

import (
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjb28/pws-api-wrapper/internal/constants"
)

const scanReport = "../../../internal/nmapimport/testdata/scan.xml"

func TestImportNmap_DryRun(t *testing.T) {
	resetConfig(t)

	out, err := execute(t, NewImportCommand(), "import", "nmap", scanReport, "--eid", "46yEw36g", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "192.168.1.1")
	assert.Contains(t, out, "gw.test.local, router.test.local")
	assert.Contains(t, out, "192.168.1.2")
	assert.NotContains(t, out, "192.168.1.3")
}

func TestImportNmap_RequiresEngagement(t *testing.T) {
	resetConfig(t)

	_, err := execute(t, NewImportCommand(), "import", "nmap", scanReport)
	require.ErrorIs(t, err, constants.ErrEngagementRequired)
}

func TestImportNmap_ByName(t *testing.T) {
	var hosts, ports atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("GET /e", func(writer http.ResponseWriter, _ *http.Request) {
		_, _ = writer.Write([]byte(`[{"id":"46yEw36g","name":"ACME External"}]`))
	})
	mux.HandleFunc("POST /e/46yEw36g/hosts", func(writer http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprintf(writer, `{"id":"host%04d"}`, hosts.Add(1))
	})
	mux.HandleFunc("POST /hosts/{hid}/ports", func(writer http.ResponseWriter, request *http.Request) {
		assert.True(t, strings.HasPrefix(request.PathValue("hid"), "host"))
		_, _ = fmt.Fprintf(writer, `{"id":"port%04d"}`, ports.Add(1))
	})

	useServer(t, mux)

	out, err := execute(t, NewImportCommand(), "import", "nmap", scanReport, "--engagement", "ACME External")
	require.NoError(t, err)

	assert.Equal(t, int32(2), hosts.Load())
	assert.Equal(t, int32(3), ports.Load())
	assert.Contains(t, out, "Host 192.168.1.1 (host0001) created.")
	assert.Contains(t, out, "Port 161 (port0003) created.")
	assert.Contains(t, out, "Hosts: 2 created, 0 rejected. Ports: 3 created, 0 rejected, 1 skipped.")
}
