package petapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pet-intake/internal/domain/pets"
	"pet-intake/internal/platform/httpclient"
	"pet-intake/internal/ports/directory"
)

var (
	ErrNotConfigured = errors.New("directory client not configured")
	ErrUpstream      = errors.New("directory upstream error")
)

// Config del cliente del Directory Service.
// BaseURL y APIKey normalmente vienen de env (DIRECTORY_BASE_URL, DIRECTORY_API_KEY).
type Config struct {
	BaseURL string
	APIKey  string

	// Opcional: nombre del header de la API key. Si está vacío, "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration

	// Transport opcional (tests).
	Transport http.RoundTripper
}

// Client implementa directory.Service contra el API REST /api/v1/pet.
type Client struct {
	http *httpclient.Client
}

var _ directory.Service = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrNotConfigured
	}

	headers := map[string]string{}
	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		h := strings.TrimSpace(cfg.APIKeyHeader)
		if h == "" {
			h = "X-Api-Key"
		}
		headers[h] = key
	}

	hc, err := httpclient.NewFromConfig(httpclient.Config{
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		Headers:   headers,
		Transport: cfg.Transport,
	})
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// Get trae un registro. 404 o respuesta vacía => directory.ErrNotFound.
func (c *Client) Get(ctx context.Context, id string) (pets.Pet, error) {
	var out pets.Payload
	err := c.http.DoJSON(ctx, http.MethodGet, petPath("get", id), nil, &out)
	if err != nil {
		if isNotFound(err) || errors.Is(err, httpclient.ErrNoContent) {
			return pets.Pet{}, directory.ErrNotFound
		}
		return pets.Pet{}, upstream(err)
	}
	return pets.FromPayload(out), nil
}

// Create da de alta el registro. Un 2xx sin cuerpo JSON (vacío o texto como
// "New pet is added!") cuenta como alta de lo enviado.
func (c *Client) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	var out pets.Payload
	err := c.http.DoJSON(ctx, http.MethodPost, pets.BasePath+"/add", pets.ToPayload(p), &out)
	if acceptedWithoutRecord(err) {
		return p, nil
	}
	if err != nil {
		return pets.Pet{}, upstream(err)
	}
	return pets.FromPayload(out), nil
}

func (c *Client) Update(ctx context.Context, id string, p pets.Pet) (pets.Pet, error) {
	var out pets.Payload
	err := c.http.DoJSON(ctx, http.MethodPut, petPath("update", id), pets.ToPayload(p), &out)
	if acceptedWithoutRecord(err) {
		return p, nil
	}
	if err != nil {
		return pets.Pet{}, upstream(err)
	}
	return pets.FromPayload(out), nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	if err := c.http.DoJSON(ctx, http.MethodDelete, petPath("delete", id), nil, nil); err != nil {
		return upstream(err)
	}
	return nil
}

// List no es parte del contrato del Synchronizer; lo usa el CLI.
func (c *Client) List(ctx context.Context) ([]pets.Pet, error) {
	var out []pets.Payload
	err := c.http.DoJSON(ctx, http.MethodGet, pets.BasePath+"/getAll", nil, &out)
	if errors.Is(err, httpclient.ErrNoContent) {
		return []pets.Pet{}, nil
	}
	if err != nil {
		return nil, upstream(err)
	}

	items := make([]pets.Pet, 0, len(out))
	for _, p := range out {
		items = append(items, pets.FromPayload(p))
	}
	return items, nil
}

func petPath(action, id string) string {
	return pets.BasePath + "/" + action + "/" + url.PathEscape(strings.TrimSpace(id))
}

func acceptedWithoutRecord(err error) bool {
	return errors.Is(err, httpclient.ErrNoContent) || errors.Is(err, httpclient.ErrDecode)
}

func isNotFound(err error) bool {
	st, ok := httpclient.StatusOf(err)
	return ok && st == http.StatusNotFound
}

func upstream(err error) error {
	return fmt.Errorf("%w: %w", ErrUpstream, err)
}
