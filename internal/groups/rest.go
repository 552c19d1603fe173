package groups

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"groupedit/internal/domain"
)

// ErrorBody is the JSON error document exchanged with a groupedit server
type ErrorBody struct {
	Type    string `json:"type,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// RESTGroupStore talks to a groupedit server over HTTP
type RESTGroupStore struct {
	baseURL string
	client  *http.Client
}

// NewRESTGroupStore creates a client for the server at baseURL.
// A nil client uses http.DefaultClient.
func NewRESTGroupStore(baseURL string, client *http.Client) *RESTGroupStore {
	if client == nil {
		client = http.DefaultClient
	}
	return &RESTGroupStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (s *RESTGroupStore) List(ctx context.Context) ([]*domain.GroupRecord, error) {
	var result []*domain.GroupRecord
	if err := s.do(ctx, http.MethodGet, "/group", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *RESTGroupStore) Get(ctx context.Context, id int64) (*domain.GroupRecord, error) {
	var result domain.GroupRecord
	if err := s.do(ctx, http.MethodGet, fmt.Sprintf("/group/%d", id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *RESTGroupStore) Create(ctx context.Context, fields domain.GroupFields) (*domain.GroupRecord, error) {
	var result domain.GroupRecord
	if err := s.do(ctx, http.MethodPost, "/group", fields, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *RESTGroupStore) Update(ctx context.Context, record *domain.GroupRecord, fields domain.GroupFields) (*domain.GroupRecord, error) {
	var result domain.GroupRecord
	if err := s.do(ctx, http.MethodPut, fmt.Sprintf("/group/%d", record.ID), fields, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// do sends one request and decodes either out or an error document
func (s *RESTGroupStore) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var body ErrorBody
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(data, &body); err != nil || body.Message == "" {
		return fmt.Errorf("server returned %s", resp.Status)
	}

	switch {
	case body.Field != "" || body.Type == "validation":
		return &domain.FieldError{Field: body.Field, Message: body.Message}
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrGroupNotFound, body.Message)
	default:
		return errors.New(body.Message)
	}
}
