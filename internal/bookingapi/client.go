package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/BruksfildServices01/barbearia-web/internal/logger"
)

const defaultTimeout = 10 * time.Second

// Observer recebe uma amostra por chamada remota
type Observer interface {
	ObserveAPICall(operation, result string, d time.Duration)
}

// Client fala JSON com a API de agendamento. O token vai por requisição.
type Client struct {
	baseURL  string
	http     *http.Client
	observer Observer
	tracer   trace.Tracer
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		tracer: otel.Tracer("barbearia-web/bookingapi"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// call descreve uma requisição à API
type call struct {
	op     string
	method string
	path   string
	token  string
	body   any
	out    any
}

func (c *Client) do(ctx context.Context, rc call) (err error) {
	ctx, span := c.tracer.Start(ctx, "bookingapi."+rc.op)
	span.SetAttributes(
		attribute.String("http.method", rc.method),
		attribute.String("bookingapi.path", rc.path),
	)

	started := time.Now()
	defer func() {
		result := "ok"
		if apiErr, ok := AsAPIError(err); ok {
			result = string(apiErr.Kind)
			span.SetStatus(codes.Error, apiErr.Message)
			span.SetAttributes(attribute.String("bookingapi.error_kind", result))
		}
		if c.observer != nil {
			c.observer.ObserveAPICall(rc.op, result, time.Since(started))
		}
		span.End()
	}()

	var bodyReader io.Reader
	if rc.body != nil {
		payload, mErr := json.Marshal(rc.body)
		if mErr != nil {
			return &APIError{Kind: KindUnknown, Message: FallbackMessage(KindUnknown), Err: mErr}
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, rc.method, c.baseURL+rc.path, bodyReader)
	if err != nil {
		return &APIError{Kind: KindUnknown, Message: FallbackMessage(KindUnknown), Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if rc.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if rc.token != "" {
		req.Header.Set("Authorization", "Bearer "+rc.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyRequestError(ctx, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return classifyRequestError(ctx, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := errorFromResponse(resp.StatusCode, respBody)
		logger.FromContext(ctx).Warn().
			Str("op", rc.op).
			Int("status", resp.StatusCode).
			Str("kind", string(apiErr.Kind)).
			Str("body", truncate(respBody, 300)).
			Msg("booking api non-2xx response")
		return apiErr
	}

	if len(bytes.TrimSpace(respBody)) == 0 || rc.out == nil {
		return nil
	}
	if err := decode(respBody, rc.out); err != nil {
		return &APIError{
			Kind:    KindUnknown,
			Status:  resp.StatusCode,
			Message: "Resposta inválida do servidor.",
			Err:     err,
		}
	}
	return nil
}

// decode aceita o corpo puro ou embrulhado em {"data": ...}
func decode(body []byte, out any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var wrapped struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err == nil && len(wrapped.Data) > 0 && string(wrapped.Data) != "null" {
			return json.Unmarshal(wrapped.Data, out)
		}
	}
	return json.Unmarshal(trimmed, out)
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n])
	}
	return string(b)
}
