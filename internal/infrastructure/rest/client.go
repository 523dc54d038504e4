package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agileflow/agileflow-go/pkg/logger"
)

// TokenSource devuelve el bearer token vigente, o cadena vacía si no hay
// sesión. El cliente lo consulta en cada request (el interceptor de axios
// del frontend original hacía lo mismo contra localStorage).
type TokenSource func() string

// APIError error devuelto por el backend con status no-2xx. Message viene del
// campo message del cuerpo de error y es apto para mostrar al usuario.
type APIError struct {
	Status  int
	Code    string
	Message string
}

// Error implementa error.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend respondió %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend respondió %d", e.Status)
}

// UserMessage devuelve el mensaje visible al usuario (puede ser vacío si el
// cuerpo de error no traía message; el llamador aplica su fallback).
func (e *APIError) UserMessage() string {
	return e.Message
}

// Client cliente HTTP base hacia el backend REST: URL base configurable,
// JSON, bearer token y un X-Request-ID por petición.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
	log     *logger.Logger
}

// NewClient construye el cliente base. token puede ser nil para un cliente
// sin sesión (solo endpoints públicos).
func NewClient(baseURL string, timeout time.Duration, token TokenSource, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
		log:     log,
	}
}

// get ejecuta un GET y decodifica la respuesta en out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// post ejecuta un POST con cuerpo JSON opcional.
func (c *Client) post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

// put ejecuta un PUT con cuerpo JSON opcional.
func (c *Client) put(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPut, path, query, body, out)
}

// delete ejecuta un DELETE.
func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do arma y ejecuta la petición. Status no-2xx se convierte en *APIError con
// el message del cuerpo; un fallo de transporte se devuelve envuelto, sin
// reintentos ni backoff (el usuario reintenta manualmente).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("armar petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("fallo de transporte")
		return fmt.Errorf("no se pudo contactar el backend: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("petición al backend")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(resp)
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("leer respuesta: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("respuesta malformada: %w", err)
	}
	return nil
}

// apiError construye el *APIError desde un cuerpo {code,message}; si el
// cuerpo no es JSON el message queda vacío y el llamador usa su fallback.
func (c *Client) apiError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(data) > 0 {
		var body struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &body) == nil {
			apiErr.Code = body.Code
			apiErr.Message = body.Message
		}
	}
	return apiErr
}
