package nmapimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjb28/pws-api-wrapper/internal/constants"
)

func TestParseFile(t *testing.T) {
	t.Parallel()

	candidates, err := ParseFile("testdata/scan.xml", "46yEw36g")
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	t.Run("linux host", func(t *testing.T) {
		t.Parallel()

		candidate := candidates[0]
		host := candidate.Host

		assert.Equal(t, "192.168.1.1", host.Target())
		assert.Equal(t, "46yEw36g", host.EngagementID())
		assert.Equal(t, "gw.test.local, router.test.local", host.Hostnames())
		assert.Equal(t, "Linux 4.15 - 5.6", host.OS())
		assert.Equal(t, "Linux", host.OSType())
		assert.Equal(t, "Server", host.DeviceType())

		require.Len(t, candidate.Ports, 2)
		assert.Equal(t, 22, candidate.Ports[0].Number())
		assert.Equal(t, "tcp", candidate.Ports[0].Proto())
		assert.Equal(t, "ssh", candidate.Ports[0].Service())
		assert.Equal(t, "OpenSSH 8.2p1", candidate.Ports[0].Version())
		assert.Equal(t, "open", candidate.Ports[0].State())
		assert.Equal(t, "Needs Review", candidate.Ports[0].Status())
		assert.Equal(t, "nginx", candidate.Ports[1].Version())

		require.Len(t, candidate.Skipped, 1)
		assert.Contains(t, candidate.Skipped[0], "2905/sctp")
	})

	t.Run("cisco router", func(t *testing.T) {
		t.Parallel()

		candidate := candidates[1]

		assert.Equal(t, "192.168.1.2", candidate.Host.Target())
		assert.Empty(t, candidate.Host.Hostnames())
		assert.Equal(t, "Cisco", candidate.Host.OSType())
		assert.Equal(t, "Router", candidate.Host.DeviceType())

		require.Len(t, candidate.Ports, 1)
		assert.Equal(t, "udp", candidate.Ports[0].Proto())
		assert.Equal(t, "open|filtered", candidate.Ports[0].State())
		assert.Empty(t, candidate.Ports[0].Version())
	})
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	t.Run("not xml", func(t *testing.T) {
		t.Parallel()

		_, err := Parse([]byte("definitely not xml"), "46yEw36g")
		require.Error(t, err)
	})

	t.Run("no live hosts", func(t *testing.T) {
		t.Parallel()

		report := `<?xml version="1.0"?><nmaprun><host><status state="down"/>` +
			`<address addr="10.0.0.1" addrtype="ipv4"/></host></nmaprun>`

		_, err := Parse([]byte(report), "46yEw36g")
		require.ErrorIs(t, err, constants.ErrNoHostsInReport)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := ParseFile("testdata/missing.xml", "46yEw36g")
		require.Error(t, err)
	})
}

func TestOSType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		family string
		vendor string
		want   string
	}{
		{"Linux", "Linux", "Linux"},
		{"Windows", "Microsoft", "Windows"},
		{"Mac OS X", "Apple", "Mac OS"},
		{"iOS", "Apple", "iOS"},
		{"IOS", "Cisco", "Cisco"},
		{"FreeBSD", "FreeBSD", "FreeBSD"},
		{"AIX", "IBM", "Unix"},
		{"embedded", "Ubiquiti", "Other"},
		{"", "", "Unknown"},
	}

	for _, testCase := range tests {
		t.Run(testCase.family+"/"+testCase.vendor, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, osType(testCase.family, testCase.vendor))
		})
	}
}

func TestDeviceType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Printer", deviceType("printer"))
	assert.Equal(t, "VoIP", deviceType("VoIP phone"))
	assert.Equal(t, "Camera", deviceType("webcam"))
	assert.Empty(t, deviceType("specialized"))
}
