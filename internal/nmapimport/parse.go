// Package nmapimport turns nmap XML reports into pentest.ws hosts and ports.
package nmapimport

import (
	"fmt"
	"os"
	"slices"
	"strings"

	nmap "github.com/Ullaakut/nmap/v3"

	"github.com/bjb28/pws-api-wrapper/internal/constants"
	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

// Candidate is a host ready to be created together with its ports.
type Candidate struct {
	Host  *pws.Host
	Ports []*pws.Port
	// Skipped lists ports that failed validation, as "port/proto: reason".
	Skipped []string
}

// ParseFile reads an nmap XML report from path.
func ParseFile(path, engagementID string) ([]Candidate, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is supplied by the operator
	if err != nil {
		return nil, fmt.Errorf("reading nmap report: %w", err)
	}

	return Parse(data, engagementID)
}

// Parse converts an nmap XML report into candidates for engagementID.
// Only hosts reported as up are kept.
func Parse(data []byte, engagementID string) ([]Candidate, error) {
	var run nmap.Run

	err := nmap.Parse(data, &run)
	if err != nil {
		return nil, fmt.Errorf("parsing nmap report: %w", err)
	}

	var candidates []Candidate

	for _, h := range run.Hosts {
		if !strings.EqualFold(h.Status.State, "up") {
			continue
		}

		address := pickHostAddress(h)
		if address == "" {
			continue
		}

		host, err := pws.NewHost(hostAttributes(h, address, engagementID))
		if err != nil {
			return nil, fmt.Errorf("host %s: %w", address, err)
		}

		candidate := Candidate{Host: host}

		for _, p := range h.Ports {
			port, err := pws.NewPort(portAttributes(p))
			if err != nil {
				candidate.Skipped = append(candidate.Skipped, fmt.Sprintf("%d/%s: %v", p.ID, p.Protocol, err))

				continue
			}

			candidate.Ports = append(candidate.Ports, port)
		}

		candidates = append(candidates, candidate)
	}

	if len(candidates) == 0 {
		return nil, constants.ErrNoHostsInReport
	}

	return candidates, nil
}

func pickHostAddress(h nmap.Host) string {
	for _, kind := range []string{"ipv4", "ipv6"} {
		for _, a := range h.Addresses {
			if a.AddrType == kind {
				return a.Addr
			}
		}
	}

	return ""
}

func hostAttributes(h nmap.Host, address, engagementID string) map[string]any {
	attrs := map[string]any{
		"eid":     engagementID,
		"target":  address,
		"os_type": "Unknown",
	}

	var names []string

	for _, hostname := range h.Hostnames {
		if hostname.Name != "" && !slices.Contains(names, hostname.Name) {
			names = append(names, hostname.Name)
		}
	}

	if len(names) > 0 {
		attrs["hostnames"] = strings.Join(names, ", ")
	}

	if len(h.OS.Matches) > 0 {
		match := h.OS.Matches[0]
		attrs["os"] = match.Name

		if len(match.Classes) > 0 {
			class := match.Classes[0]
			attrs["os_type"] = osType(class.Family, class.Vendor)

			if device := deviceType(class.Type); device != "" {
				attrs["type"] = device
			}
		}
	}

	return attrs
}

func portAttributes(p nmap.Port) map[string]any {
	attrs := map[string]any{
		"port":   int(p.ID),
		"proto":  strings.ToLower(p.Protocol),
		"state":  strings.ToLower(p.State.State),
		"status": "Needs Review",
	}

	if p.Service.Name != "" {
		attrs["service"] = p.Service.Name
	}

	version := strings.TrimSpace(p.Service.Product + " " + p.Service.Version)
	if version != "" {
		attrs["version"] = version
	}

	return attrs
}

// osType maps an nmap osfamily onto an OSTypes label.
func osType(family, vendor string) string {
	code := "other"

	switch strings.ToLower(family) {
	case "":
		code = "unknown"
	case "linux":
		code = "linux"
	case "windows":
		code = "windows"
	case "mac os x", "macos", "mac os":
		code = "mac"
	case "ios":
		code = "ios"
		if strings.EqualFold(vendor, "cisco") {
			code = "cisco"
		}
	case "android":
		code = "android"
	case "freebsd":
		code = "freebsd"
	case "openbsd":
		code = "openbsd"
	case "solaris", "sunos":
		code = "solaris"
	case "aix", "hp-ux", "irix", "netbsd", "unix":
		code = "unix"
	}

	return label(pws.OSTypes, code)
}

// deviceType maps an nmap osclass type onto a DeviceTypes label. Unmapped
// types return "".
func deviceType(nmapType string) string {
	var code string

	switch t := strings.ToLower(nmapType); {
	case t == "general purpose":
		code = "server"
	case t == "router", t == "broadband router", t == "wap":
		code = "router"
	case t == "switch":
		code = "switch"
	case t == "firewall":
		code = "firewall"
	case t == "printer", t == "print server":
		code = "printer"
	case t == "webcam":
		code = "camera"
	case strings.HasPrefix(t, "voip"):
		code = "voip"
	case t == "storage-misc":
		code = "storage"
	case t == "phone", t == "pda":
		code = "mobile"
	default:
		return ""
	}

	return label(pws.DeviceTypes, code)
}

func label(choices []pws.Choice, code string) string {
	for _, choice := range choices {
		if choice.Code == code {
			return choice.Label
		}
	}

	return code
}
