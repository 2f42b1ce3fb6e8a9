package pws

import (
	"encoding/json"
	"fmt"
)

// Kind describes how a resource is validated, labelled and addressed.
type Kind struct {
	// Name is the display name used in result messages.
	Name string
	// Plural is the lowercase collection name.
	Plural string
	// Segment is the path segment for a single resource, as in /Segment/{id}.
	Segment string
	// LabelField names the human-facing field used in result messages.
	LabelField string
	// Schema validates every field map for this kind.
	Schema Schema
	// CreateOmit lists fields dropped from create bodies.
	CreateOmit []string
	// UpdateOmit lists fields dropped from update bodies.
	UpdateOmit []string
	// Collection derives the collection path from the parent fields.
	Collection func(Fields) (string, error)
}

// SelfPath returns /Segment/id.
func (k *Kind) SelfPath(id string) string {
	return fmt.Sprintf("/%s/%s", k.Segment, id)
}

// Entity is implemented by every resource type.
type Entity interface {
	Kind() *Kind
	ID() string
	SetID(id string) error
	Label() string
	Get(name string) (any, bool)
	Set(name string, value any) error
	Unset(name string) error
	Fields() Fields
	ToMap() map[string]any
	Path() (string, error)
	CollectionPath() (string, error)
}

// record is the shared entity implementation. Paths are derived from the
// fields after every change and never written directly.
type record struct {
	kind           *Kind
	fields         Fields
	path           string
	collectionPath string
}

func newRecord(kind *Kind, attrs map[string]any) (*record, error) {
	fields, err := kind.Schema.Validate(attrs)
	if err != nil {
		return nil, err
	}

	r := &record{kind: kind, fields: fields}
	r.derive()

	return r, nil
}

func (r *record) derive() {
	r.path = ""
	if id := r.fields.String("id"); id != "" {
		r.path = r.kind.SelfPath(id)
	}

	r.collectionPath = ""
	if r.kind.Collection != nil {
		if p, err := r.kind.Collection(r.fields); err == nil {
			r.collectionPath = p
		}
	}
}

// Kind returns the resource descriptor.
func (r *record) Kind() *Kind {
	return r.kind
}

// ID returns the server-assigned id, or "" before create.
func (r *record) ID() string {
	return r.fields.String("id")
}

// SetID validates and installs id.
func (r *record) SetID(id string) error {
	return r.Set("id", id)
}

// Label returns the human-facing label.
func (r *record) Label() string {
	value, ok := r.fields[r.kind.LabelField]
	if !ok {
		return ""
	}

	return fmt.Sprint(value)
}

// Get returns the raw accepted value of name.
func (r *record) Get(name string) (any, bool) {
	value, ok := r.fields[name]

	return value, ok
}

// Set validates value against the schema and installs it. On failure the
// entity is unchanged.
func (r *record) Set(name string, value any) error {
	candidate := r.fields.Clone()
	candidate[name] = value

	return r.replace(candidate)
}

// Unset removes name. Removing a required field fails.
func (r *record) Unset(name string) error {
	candidate := r.fields.Clone()
	delete(candidate, name)

	return r.replace(candidate)
}

func (r *record) replace(candidate map[string]any) error {
	fields, err := r.kind.Schema.Validate(candidate)
	if err != nil {
		return err
	}

	r.fields = fields
	r.derive()

	return nil
}

// Fields returns a copy of the present fields.
func (r *record) Fields() Fields {
	return r.fields.Clone()
}

// ToMap returns the JSON-ready form of the present fields.
func (r *record) ToMap() map[string]any {
	return r.fields.ToMap()
}

// MarshalJSON implements json.Marshaler.
func (r *record) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(r.fields.ToMap())
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", r.kind.Name, err)
	}

	return data, nil
}

// Path returns the self path, relative to the API base URL.
func (r *record) Path() (string, error) {
	if r.path == "" {
		return "", fmt.Errorf("%s %q: %w", r.kind.Name, r.Label(), ErrNoIdentity)
	}

	return r.path, nil
}

// CollectionPath returns the collection path the entity is created under.
func (r *record) CollectionPath() (string, error) {
	if r.kind.Collection == nil {
		return "", fmt.Errorf("%s: %w", r.kind.Name, ErrNoParent)
	}

	return r.kind.Collection(r.fields)
}

// MarshalYAML implements yaml.Marshaler.
func (r *record) MarshalYAML() (interface{}, error) {
	return r.fields.ToMap(), nil
}
