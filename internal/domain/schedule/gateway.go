package schedule

import (
	"context"

	"github.com/BruksfildServices01/barbearia-web/internal/models"
)

// ConfigGateway lê e grava a configuração da barbearia na API remota
type ConfigGateway interface {
	GetConfig(ctx context.Context, token string, shopID int64) (*models.BarbeariaConfig, error)
	UpdateConfig(ctx context.Context, token string, shopID int64, cfg models.BarbeariaConfig) error
}

// DefaultDurationMinutes é usado quando nem serviços nem configuração informam a duração
const DefaultDurationMinutes = 30
