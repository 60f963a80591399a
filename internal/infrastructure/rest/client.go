// Package rest implementa los puertos gateway contra la API REST del
// backend Billennium (<base>/api/...).
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ErnestEguez/websitebillennium/internal/domain"
	"github.com/ErnestEguez/websitebillennium/pkg/logger"
)

// TokenSource entrega el token de la sesión vigente, o cadena vacía si no
// hay sesión. *session.Manager lo satisface.
type TokenSource interface {
	Token() string
}

// Client es el cliente JSON genérico del portal. Adjunta el bearer token
// cuando existe sesión y traduce los rechazos del backend a domain.APIError.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	tokens         TokenSource
	log            *logger.Logger
	onUnauthorized func()
}

// NewClient construye el cliente. baseURL es la raíz del backend, sin /api.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
		log:        log,
	}
}

// OnUnauthorized registra el interceptor central de sesión inválida: se
// invoca una vez por cada respuesta 401 del backend, antes de devolver el
// error al llamador.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// errorBody es el cuerpo de error del backend: {"detail": "..."}.
type errorBody struct {
	Detail string `json:"detail"`
}

// do emite una petición JSON y decodifica la respuesta en out (si no es
// nil). El contexto acota la vida de la petición: una vista que termina
// cancela su propia llamada en vuelo.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("rest: serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+path, reader)
	if err != nil {
		return fmt.Errorf("rest: crear petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("rest: fallo de red en %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("petición al backend")

	if resp.StatusCode >= http.StatusBadRequest {
		var eb errorBody
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		_ = json.Unmarshal(raw, &eb)

		if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return &domain.APIError{StatusCode: resp.StatusCode, Detail: eb.Detail}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("rest: decodificar respuesta de %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}
