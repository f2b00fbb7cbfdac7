package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Resource is the CRUD surface of one backend collection. T is the wire shape
// returned by the list endpoint.
type Resource[T any] struct {
	client *Client
	kind   string
	path   string
}

// NewResource binds a collection path such as "/api/leads"
func NewResource[T any](client *Client, kind, path string) *Resource[T] {
	return &Resource[T]{client: client, kind: kind, path: path}
}

// Kind names the collection in errors
func (r *Resource[T]) Kind() string {
	return r.kind
}

// List fetches every record matching query. Nil query lists everything.
func (r *Resource[T]) List(ctx context.Context, query url.Values) ([]T, error) {
	var items []T
	if err := r.client.do(ctx, http.MethodGet, r.path, query, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// GetByID fetches a single record through the list endpoint's id filter.
// Ids that are not UUIDs can name no record and yield NotFoundError.
func (r *Resource[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	id = strings.TrimSpace(id)
	if id == "" {
		return zero, &ValidationError{Field: "id", Message: "id is required"}
	}

	if _, err := uuid.Parse(id); err != nil {
		return zero, &NotFoundError{Kind: r.kind, ID: id}
	}

	items, err := r.List(ctx, url.Values{"id": {id}})
	if err != nil {
		return zero, err
	}
	if len(items) == 0 {
		return zero, &NotFoundError{Kind: r.kind, ID: id}
	}
	return items[0], nil
}

// Create posts a new record. Any id in the payload is dropped.
func (r *Resource[T]) Create(ctx context.Context, payload Payload) (Result, error) {
	body := payload.clone()
	delete(body, "id")

	var result Result
	if err := r.client.do(ctx, http.MethodPost, r.path, nil, body, &result); err != nil {
		return Result{}, err
	}
	return result, nil
}

// Update replaces the record with id. It only ever issues PUT; an empty id
// is a ValidationError and never turns into a create.
func (r *Resource[T]) Update(ctx context.Context, id string, payload Payload) (Result, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Result{}, &ValidationError{Field: "id", Message: "id is required for update"}
	}
	if _, err := uuid.Parse(id); err != nil {
		return Result{}, &NotFoundError{Kind: r.kind, ID: id}
	}
	body := payload.clone()
	body["id"] = id

	var result Result
	if err := r.client.do(ctx, http.MethodPut, r.path, nil, body, &result); err != nil {
		return Result{}, r.notFound(err, id)
	}
	return result, nil
}

// Remove deletes the record with id. A missing record yields NotFoundError.
func (r *Resource[T]) Remove(ctx context.Context, id string) (Result, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Result{}, &ValidationError{Field: "id", Message: "id is required for delete"}
	}
	if _, err := uuid.Parse(id); err != nil {
		return Result{}, &NotFoundError{Kind: r.kind, ID: id}
	}

	var result Result
	if err := r.client.do(ctx, http.MethodDelete, r.path, url.Values{"id": {id}}, nil, &result); err != nil {
		return Result{}, r.notFound(err, id)
	}
	return result, nil
}

func (r *Resource[T]) notFound(err error, id string) error {
	var netErr *NetworkError
	if errors.As(err, &netErr) && netErr.Status == http.StatusNotFound {
		return &NotFoundError{Kind: r.kind, ID: id}
	}
	return err
}
