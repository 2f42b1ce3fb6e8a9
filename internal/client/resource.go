package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"

	internalhttp "github.com/bjb28/pws-api-wrapper/internal/http"
	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

// ResourceClient implements the operations shared by every resource kind.
// Create, Update and Delete map status codes onto a pws.Result; Get and List
// return errors instead.
type ResourceClient[T pws.Entity] struct {
	httpClient *internalhttp.Client
	kind       *pws.Kind
	build      func(map[string]any) (T, error)
}

// NewResourceClient creates a generic client for kind. build is the
// entity constructor used for decoding responses.
func NewResourceClient[T pws.Entity](httpClient *internalhttp.Client, kind *pws.Kind, build func(map[string]any) (T, error)) *ResourceClient[T] {
	return &ResourceClient[T]{
		httpClient: httpClient,
		kind:       kind,
		build:      build,
	}
}

// Create posts entity to its collection. On success the server-assigned id
// is installed on entity.
func (c *ResourceClient[T]) Create(ctx context.Context, entity T) (*pws.Result, error) {
	if isNil(entity) {
		return nil, fmt.Errorf("creating %s: %w", c.kind.Name, pws.ErrNilEntity)
	}

	path, err := entity.CollectionPath()
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.kind.Name, err)
	}

	body := entity.Fields().Without(c.kind.CreateOmit...)

	resp, err := c.httpClient.Post(ctx, path, body)
	if resp == nil {
		return nil, fmt.Errorf("creating %s: %w", c.kind.Name, err)
	}

	apiErr, err := splitAPIError(err)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.kind.Name, err)
	}

	switch {
	case isSuccess(resp.StatusCode):
		var created struct {
			ID string `json:"id"`
		}

		err = json.Unmarshal(resp.Body, &created)
		if err != nil {
			return nil, fmt.Errorf("parsing created %s: %w", c.kind.Name, err)
		}

		if created.ID == "" {
			return nil, fmt.Errorf("creating %s: %w", c.kind.Name, pws.ErrMissingResponseID)
		}

		err = entity.SetID(created.ID)
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", c.kind.Name, err)
		}

		return pws.Succeeded(entity, pws.ActionCreated, resp.StatusCode), nil
	case resp.StatusCode == http.StatusBadRequest:
		return pws.Rejected(pws.ActionCreated, resp.StatusCode, apiErr), nil
	default:
		return pws.Unexpected(pws.ActionCreated, resp.StatusCode, apiErr), c.unexpected("creating", resp.StatusCode, apiErr)
	}
}

// Get fetches a single entity by id.
func (c *ResourceClient[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T

	err := checkID("id", id)
	if err != nil {
		return zero, fmt.Errorf("getting %s: %w", c.kind.Name, err)
	}

	resp, err := c.httpClient.Get(ctx, c.kind.SelfPath(id), nil)
	if err != nil {
		return zero, fmt.Errorf("getting %s %s: %w: %w", c.kind.Name, id, pws.ErrFetchFailed, err)
	}

	if !isSuccess(resp.StatusCode) {
		return zero, fmt.Errorf("getting %s %s: %w (status %d)", c.kind.Name, id, pws.ErrFetchFailed, resp.StatusCode)
	}

	fields, err := decodeObject(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("parsing %s %s: %w", c.kind.Name, id, err)
	}

	entity, err := c.build(c.kind.Schema.Known(fields))
	if err != nil {
		return zero, fmt.Errorf("decoding %s %s: %w", c.kind.Name, id, err)
	}

	return entity, nil
}

// List fetches every entity under path. Parent fields missing from the
// response items are filled from parent.
func (c *ResourceClient[T]) List(ctx context.Context, path string, parent map[string]any) ([]T, error) {
	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w: %w", c.kind.Plural, pws.ErrFetchFailed, err)
	}

	if !isSuccess(resp.StatusCode) {
		return nil, fmt.Errorf("listing %s: %w (status %d)", c.kind.Plural, pws.ErrFetchFailed, resp.StatusCode)
	}

	items, err := decodeList(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list: %w", c.kind.Plural, err)
	}

	entities := make([]T, 0, len(items))

	for i, item := range items {
		fields := c.kind.Schema.Known(item)
		for key, value := range parent {
			if _, ok := fields[key]; !ok {
				fields[key] = value
			}
		}

		entity, err := c.build(fields)
		if err != nil {
			return nil, fmt.Errorf("decoding %s list item %d: %w", c.kind.Plural, i, err)
		}

		entities = append(entities, entity)
	}

	return entities, nil
}

// Update puts the mutable fields of entity to its own path.
func (c *ResourceClient[T]) Update(ctx context.Context, entity T) (*pws.Result, error) {
	if isNil(entity) {
		return nil, fmt.Errorf("updating %s: %w", c.kind.Name, pws.ErrNilEntity)
	}

	path, err := entity.Path()
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", c.kind.Name, err)
	}

	body := entity.Fields().Without(c.kind.UpdateOmit...)

	resp, err := c.httpClient.Put(ctx, path, body)
	if resp == nil {
		return nil, fmt.Errorf("updating %s: %w", c.kind.Name, err)
	}

	apiErr, err := splitAPIError(err)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", c.kind.Name, err)
	}

	switch {
	case isSuccess(resp.StatusCode):
		return pws.Succeeded(entity, pws.ActionUpdated, resp.StatusCode), nil
	case resp.StatusCode == http.StatusBadRequest:
		return pws.Rejected(pws.ActionUpdated, resp.StatusCode, apiErr), nil
	default:
		return pws.Unexpected(pws.ActionUpdated, resp.StatusCode, apiErr), c.unexpected("updating", resp.StatusCode, apiErr)
	}
}

// Delete removes entity. A 404 is reported as a failed Result, not an error.
func (c *ResourceClient[T]) Delete(ctx context.Context, entity T) (*pws.Result, error) {
	if isNil(entity) {
		return nil, fmt.Errorf("deleting %s: %w", c.kind.Name, pws.ErrNilEntity)
	}

	path, err := entity.Path()
	if err != nil {
		return nil, fmt.Errorf("deleting %s: %w", c.kind.Name, err)
	}

	resp, err := c.httpClient.Delete(ctx, path)
	if resp == nil {
		return nil, fmt.Errorf("deleting %s: %w", c.kind.Name, err)
	}

	apiErr, err := splitAPIError(err)
	if err != nil {
		return nil, fmt.Errorf("deleting %s: %w", c.kind.Name, err)
	}

	switch {
	case isSuccess(resp.StatusCode):
		return pws.Succeeded(entity, pws.ActionDeleted, resp.StatusCode), nil
	case resp.StatusCode == http.StatusNotFound:
		return pws.NotFound(entity, resp.StatusCode, apiErr), nil
	default:
		return pws.Unexpected(pws.ActionDeleted, resp.StatusCode, apiErr), c.unexpected("deleting", resp.StatusCode, apiErr)
	}
}

func (c *ResourceClient[T]) unexpected(verb string, status int, apiErr *pws.APIError) error {
	if apiErr != nil {
		return fmt.Errorf("%s %s: %w %d: %w", verb, c.kind.Name, pws.ErrUnexpectedStatus, status, apiErr)
	}

	return fmt.Errorf("%s %s: %w %d", verb, c.kind.Name, pws.ErrUnexpectedStatus, status)
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// splitAPIError separates an API status error from transport or
// interceptor failures.
func splitAPIError(err error) (*pws.APIError, error) {
	if err == nil {
		return nil, nil
	}

	apiErr := &pws.APIError{}
	if errors.As(err, &apiErr) {
		return apiErr, nil
	}

	return nil, err
}

func isNil(entity pws.Entity) bool {
	if entity == nil {
		return true
	}

	value := reflect.ValueOf(entity)

	return value.Kind() == reflect.Ptr && value.IsNil()
}

// checkID rejects ids that would not address a single resource.
func checkID(field, id string) error {
	if pws.IDPattern.MatchString(id) {
		return nil
	}

	return &pws.ValidationError{Violations: []pws.Violation{{
		Field:   field,
		Message: fmt.Sprintf("%q should be 8 alphanumeric characters", field),
	}}}
}

func decodeObject(body []byte) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var fields map[string]any

	err := decoder.Decode(&fields)
	if err != nil {
		return nil, fmt.Errorf("decoding object: %w", err)
	}

	return fields, nil
}

func decodeList(body []byte) ([]map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var items []map[string]any

	err := decoder.Decode(&items)
	if err != nil {
		return nil, fmt.Errorf("decoding list: %w", err)
	}

	return items, nil
}
