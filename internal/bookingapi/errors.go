package bookingapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"syscall"
)

// ErrorKind classifica as falhas da API remota
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindAuth       ErrorKind = "auth"
	KindNetwork    ErrorKind = "network"
	KindServer     ErrorKind = "server"
	KindUnknown    ErrorKind = "unknown"
)

var fallbackMessages = map[ErrorKind]string{
	KindValidation: "Não foi possível concluir a operação. Verifique os dados informados.",
	KindAuth:       "Sessão expirada ou sem permissão. Faça login novamente.",
	KindNetwork:    "Não foi possível conectar ao servidor. Tente novamente.",
	KindServer:     "O servidor encontrou um erro. Tente novamente mais tarde.",
	KindUnknown:    "Ocorreu um erro inesperado.",
}

// FallbackMessage é a mensagem genérica usada quando a API não envia uma
func FallbackMessage(kind ErrorKind) string {
	if msg, ok := fallbackMessages[kind]; ok {
		return msg
	}
	return fallbackMessages[KindUnknown]
}

// APIError é o único formato de erro devolvido pelo cliente
type APIError struct {
	Kind    ErrorKind
	Status  int // 0 quando não houve resposta
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("bookingapi %s error (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("bookingapi %s error: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// AsAPIError extrai um *APIError da cadeia de erros
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func IsKind(err error, kind ErrorKind) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Kind == kind
}

// KindForStatus mapeia o status HTTP para o tipo de erro
func KindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status >= 400 && status < 500:
		return KindValidation
	case status >= 500:
		return KindServer
	default:
		return KindUnknown
	}
}

// errorFromResponse aplica a política única de extração de mensagem:
// campo "message", depois "error", depois a mensagem genérica do tipo.
func errorFromResponse(status int, body []byte) *APIError {
	kind := KindForStatus(status)
	return &APIError{
		Kind:    kind,
		Status:  status,
		Message: extractMessage(body, kind),
	}
}

func extractMessage(body []byte, kind ErrorKind) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, key := range []string{"message", "error"} {
			if s, ok := payload[key].(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	return FallbackMessage(kind)
}

// ===============================
// Falhas de transporte
// ===============================

func classifyRequestError(ctx context.Context, err error) *APIError {
	apiErr := &APIError{Kind: KindNetwork, Err: err}

	switch {
	case isTimeoutError(ctx, err):
		apiErr.Message = "Tempo de resposta do servidor esgotado. Tente novamente."
	case errors.Is(err, context.Canceled):
		apiErr.Message = "Requisição cancelada."
	case isNetworkError(err):
		apiErr.Message = FallbackMessage(KindNetwork)
	default:
		apiErr.Kind = KindUnknown
		apiErr.Message = FallbackMessage(KindUnknown)
	}

	return apiErr
}

func isTimeoutError(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH)
}
