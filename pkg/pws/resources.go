package pws

import (
	"fmt"
)

func parentCollection(parentSegment, parentField, plural string) func(Fields) (string, error) {
	return func(f Fields) (string, error) {
		parentID := f.String(parentField)
		if parentID == "" {
			return "", fmt.Errorf("%q: %w", parentField, ErrNoParent)
		}

		return fmt.Sprintf("/%s/%s/%s", parentSegment, parentID, plural), nil
	}
}

// Resource kinds.
var (
	EngagementKind = &Kind{
		Name:       "Engagement",
		Plural:     "engagements",
		Segment:    "e",
		LabelField: "name",
		Schema:     EngagementSchema,
		UpdateOmit: []string{"id", "created_at", "archived"},
		Collection: func(Fields) (string, error) { return "/e", nil },
	}

	HostKind = &Kind{
		Name:       "Host",
		Plural:     "hosts",
		Segment:    "hosts",
		LabelField: "target",
		Schema:     HostSchema,
		CreateOmit: []string{"eid"},
		UpdateOmit: []string{"id", "eid", "created_at"},
		Collection: parentCollection("e", "eid", "hosts"),
	}

	PortKind = &Kind{
		Name:       "Port",
		Plural:     "ports",
		Segment:    "ports",
		LabelField: "port",
		Schema:     PortSchema,
		CreateOmit: []string{"hid"},
		UpdateOmit: []string{"id", "hid"},
		Collection: parentCollection("hosts", "hid", "ports"),
	}

	FindingKind = &Kind{
		Name:       "Finding",
		Plural:     "findings",
		Segment:    "findings",
		LabelField: "title",
		Schema:     FindingSchema,
		CreateOmit: []string{"eid"},
		UpdateOmit: []string{"id", "eid", "created_at"},
		Collection: parentCollection("e", "eid", "findings"),
	}

	NotePageKind = &Kind{
		Name:       "Note Page",
		Plural:     "notepages",
		Segment:    "notepages",
		LabelField: "title",
		Schema:     NotePageSchema,
		CreateOmit: []string{"oid", "otype"},
		UpdateOmit: []string{"id", "oid", "otype"},
		Collection: func(f Fields) (string, error) {
			otype, oid := f.String("otype"), f.String("oid")
			if otype == "" || oid == "" {
				return "", fmt.Errorf(`"otype" and "oid": %w`, ErrNoParent)
			}

			return fmt.Sprintf("/%s/%s/notepages", otype, oid), nil
		},
	}

	ScratchpadKind = &Kind{
		Name:       "Scratchpad",
		Plural:     "scratchpads",
		Segment:    "scratchpads",
		LabelField: "title",
		Schema:     ScratchpadSchema,
		CreateOmit: []string{"hid"},
		UpdateOmit: []string{"id", "hid"},
		Collection: parentCollection("hosts", "hid", "scratchpads"),
	}
)

// Kinds lists every resource kind.
func Kinds() []*Kind {
	return []*Kind{EngagementKind, HostKind, PortKind, FindingKind, NotePageKind, ScratchpadKind}
}

// Engagement is a pentest.ws engagement.
type Engagement struct{ record }

// NewEngagement validates attrs and builds an Engagement.
func NewEngagement(attrs map[string]any) (*Engagement, error) {
	r, err := newRecord(EngagementKind, attrs)
	if err != nil {
		return nil, err
	}

	return &Engagement{record: *r}, nil
}

// Name returns the engagement name.
func (e *Engagement) Name() string { return e.fields.String("name") }

// Notes returns the engagement notes.
func (e *Engagement) Notes() string { return e.fields.String("notes") }

// ClientID returns the pentest.ws client id.
func (e *Engagement) ClientID() string { return e.fields.String("client_id") }

// CreatedAt returns the creation time, if known.
func (e *Engagement) CreatedAt() (Timestamp, bool) { return e.fields.Timestamp("created_at") }

// ArchivedAt returns the archival time, if the engagement is archived.
func (e *Engagement) ArchivedAt() (Timestamp, bool) { return e.fields.Timestamp("archived") }

// Host is a target machine inside an engagement.
type Host struct{ record }

// NewHost validates attrs and builds a Host.
func NewHost(attrs map[string]any) (*Host, error) {
	r, err := newRecord(HostKind, attrs)
	if err != nil {
		return nil, err
	}

	return &Host{record: *r}, nil
}

// EngagementID returns the parent engagement id.
func (h *Host) EngagementID() string { return h.fields.String("eid") }

// Target returns the canonical IP address.
func (h *Host) Target() string { return h.fields.String("target") }

// Hostnames returns the hostnames string.
func (h *Host) Hostnames() string { return h.fields.String("hostnames") }

// OS returns the specific operating system.
func (h *Host) OS() string { return h.fields.String("os") }

// OSType returns the operating-system family.
func (h *Host) OSType() string { return h.fields.String("os_type") }

// DeviceType returns the device type.
func (h *Host) DeviceType() string { return h.fields.String("type") }

// DisplayLabel returns the host label, falling back to the target.
func (h *Host) DisplayLabel() string {
	if label := h.fields.String("label"); label != "" {
		return label
	}

	return h.Target()
}

// Flagged reports whether the host is flagged.
func (h *Host) Flagged() bool { return h.fields.Bool("flagged") }

// OutOfScope reports whether the host is out of scope.
func (h *Host) OutOfScope() bool { return h.fields.Bool("out_of_scope") }

// Port is a network port on a host.
type Port struct{ record }

// NewPort validates attrs and builds a Port.
func NewPort(attrs map[string]any) (*Port, error) {
	r, err := newRecord(PortKind, attrs)
	if err != nil {
		return nil, err
	}

	return &Port{record: *r}, nil
}

// HostID returns the parent host id.
func (p *Port) HostID() string { return p.fields.String("hid") }

// Number returns the port number.
func (p *Port) Number() int { return p.fields.Int("port") }

// Proto returns the protocol.
func (p *Port) Proto() string { return p.fields.String("proto") }

// Service returns the service name.
func (p *Port) Service() string { return p.fields.String("service") }

// Version returns the service version.
func (p *Port) Version() string { return p.fields.String("version") }

// State returns the port state.
func (p *Port) State() string { return p.fields.String("state") }

// Status returns the review status.
func (p *Port) Status() string { return p.fields.String("status") }

// Checklist returns the port checklist.
func (p *Port) Checklist() []map[string]any { return p.fields.Maps("checklist") }

// Finding is a reported vulnerability inside an engagement.
type Finding struct{ record }

// NewFinding validates attrs and builds a Finding.
func NewFinding(attrs map[string]any) (*Finding, error) {
	r, err := newRecord(FindingKind, attrs)
	if err != nil {
		return nil, err
	}

	return &Finding{record: *r}, nil
}

// EngagementID returns the parent engagement id.
func (f *Finding) EngagementID() string { return f.fields.String("eid") }

// Title returns the finding title.
func (f *Finding) Title() string { return f.fields.String("title") }

// RiskLevel returns the risk level.
func (f *Finding) RiskLevel() string { return f.fields.String("risk_level") }

// CVSS3 returns the CVSS v3 score.
func (f *Finding) CVSS3() float64 { return f.fields.Float("cvss3_num") }

// Dread returns the DREAD score components.
func (f *Finding) Dread() []string { return f.fields.Strings("dread") }

// NotePage is a rich-text note attached to an engagement, host or port.
type NotePage struct{ record }

// NewNotePage validates attrs and builds a NotePage.
func NewNotePage(attrs map[string]any) (*NotePage, error) {
	r, err := newRecord(NotePageKind, attrs)
	if err != nil {
		return nil, err
	}

	return &NotePage{record: *r}, nil
}

// ObjectType returns the parent object type (e, hosts or ports).
func (n *NotePage) ObjectType() string { return n.fields.String("otype") }

// ObjectID returns the parent object id.
func (n *NotePage) ObjectID() string { return n.fields.String("oid") }

// Title returns the note page title.
func (n *NotePage) Title() string { return n.fields.String("title") }

// Content returns the note page body.
func (n *NotePage) Content() string { return n.fields.String("content") }

// Scratchpad is a code or rich-text pad attached to a host.
type Scratchpad struct{ record }

// NewScratchpad validates attrs and builds a Scratchpad.
func NewScratchpad(attrs map[string]any) (*Scratchpad, error) {
	r, err := newRecord(ScratchpadKind, attrs)
	if err != nil {
		return nil, err
	}

	return &Scratchpad{record: *r}, nil
}

// HostID returns the parent host id.
func (s *Scratchpad) HostID() string { return s.fields.String("hid") }

// Title returns the scratchpad title.
func (s *Scratchpad) Title() string { return s.fields.String("title") }

// Type returns the content type.
func (s *Scratchpad) Type() string { return s.fields.String("type") }

// Language returns the syntax mode.
func (s *Scratchpad) Language() string { return s.fields.String("language") }

// Content returns the scratchpad body.
func (s *Scratchpad) Content() string { return s.fields.String("content") }
