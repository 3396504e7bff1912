// Package gateway implementa el cliente HTTP autenticado contra la gateway de
// la plataforma y los wrappers tipados por servicio (auth, catálogo, admin,
// seller, pedidos, pago, recomendaciones).
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/shadows/nblb-console/internal/domain"
	"github.com/shadows/nblb-console/pkg/logger"
)

// TokenSource entrega el bearer token vigente; cadena vacía = sesión anónima.
type TokenSource interface {
	Token() string
}

// Client construye las cabeceras (JSON + Authorization cuando hay token) y
// delega en net/http. Un solo intento por request: sin retries, sin backoff;
// un fallo de red se devuelve tal cual al caller.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *logger.Logger
}

// NewClient construye el cliente sobre la URL base de la gateway.
func NewClient(baseURL string, tokens TokenSource, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     log,
	}
}

// Do ejecuta una request contra la gateway y devuelve la respuesta cruda: el
// caller decide qué hacer con cada status (un 401 no significa lo mismo en
// todas las vistas). body != nil se serializa como JSON y activa la cabecera
// Content-Type por defecto. Las cabeceras extra del caller pisan las
// generadas cuando colisionan las claves.
func (c *Client) Do(ctx context.Context, method, path string, body any, extra http.Header) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("gateway: serializar request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("gateway: construir request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	for key, values := range extra {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("gateway request")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway: %s %s: %w", method, path, err)
	}
	return resp, nil
}

// doJSON atajo para los wrappers tipados: ejecuta, mapea el status al error de
// la taxonomía y decodifica el body 2xx en out (out == nil descarta el body).
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.Do(ctx, method, path, body, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidResponse, err)
	}
	return nil
}

// ── Taxonomía de errores HTTP ─────────────────────────────────────────────────

// APIError respuesta non-2xx de la gateway. Message trae el `{error: ...}` del
// servidor textual cuando existe; si no, queda vacío y la vista muestra un
// mensaje genérico.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("la gateway respondió %d", e.StatusCode)
}

// Unwrap permite errors.Is contra los sentinelas de dominio.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	}
	return nil
}

// newAPIError lee el body buscando `{error: mensaje}`; un body que no sea ese
// JSON se ignora.
func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(data) > 0 {
		var payload struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &payload) == nil {
			if payload.Error != "" {
				apiErr.Message = payload.Error
			} else if payload.Message != "" {
				apiErr.Message = payload.Message
			}
		}
	}
	return apiErr
}

// ServerMessage devuelve el mensaje textual del servidor si el error lo trae.
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

// AnonymousTokens TokenSource fijo sin token, para endpoints públicos o tests.
type AnonymousTokens struct{}

func (AnonymousTokens) Token() string { return "" }
