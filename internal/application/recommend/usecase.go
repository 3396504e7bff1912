// Package recommend pipeline de recomendaciones del dashboard de vendedor:
// dos pasos encadenados porque el payload del segundo depende del resultado
// del primero.
package recommend

import (
	"context"

	"github.com/shadows/nblb-console/internal/infrastructure/gateway"
	"github.com/shadows/nblb-console/pkg/logger"
)

// API puerto hacia el recommendation-service.
type API interface {
	TopSold(ctx context.Context, limit int) ([]gateway.TopSoldItem, error)
	Suggest(ctx context.Context, topSold []gateway.TopSoldItem, limit int) ([]string, error)
}

// Picks resultado del pipeline. Cada mitad falla por separado: un error en
// top-sold no impide pedir sugerencias (con base vacía), y viceversa; la
// vista decide qué placeholder mostrar por cada parte.
type Picks struct {
	TopSold     []gateway.TopSoldItem
	TopSoldErr  error
	Suggestions []string
	SuggestErr  error
}

// Pipeline orquesta top-sold → suggest-products.
type Pipeline struct {
	api API
	log *logger.Logger
}

func NewPipeline(api API, log *logger.Logger) *Pipeline {
	return &Pipeline{api: api, log: log}
}

// DashboardPicks ejecuta los dos pasos en secuencia.
func (p *Pipeline) DashboardPicks(ctx context.Context, limit int) Picks {
	var picks Picks

	picks.TopSold, picks.TopSoldErr = p.api.TopSold(ctx, limit)
	if picks.TopSoldErr != nil {
		p.log.Warn().Err(picks.TopSoldErr).Msg("no se pudieron cargar los más vendidos")
		picks.TopSold = nil
	}

	picks.Suggestions, picks.SuggestErr = p.api.Suggest(ctx, picks.TopSold, limit)
	if picks.SuggestErr != nil {
		p.log.Warn().Err(picks.SuggestErr).Msg("no se pudieron generar sugerencias")
	}

	return picks
}
