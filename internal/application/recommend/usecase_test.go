package recommend_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadows/nblb-console/internal/application/recommend"
	"github.com/shadows/nblb-console/internal/infrastructure/gateway"
	"github.com/shadows/nblb-console/pkg/logger"
)

type fakeRecAPI struct {
	topSold    []gateway.TopSoldItem
	topSoldErr error

	suggestions []string
	suggestErr  error
	suggestBase []gateway.TopSoldItem
}

func (f *fakeRecAPI) TopSold(_ context.Context, _ int) ([]gateway.TopSoldItem, error) {
	return f.topSold, f.topSoldErr
}

func (f *fakeRecAPI) Suggest(_ context.Context, topSold []gateway.TopSoldItem, _ int) ([]string, error) {
	f.suggestBase = topSold
	return f.suggestions, f.suggestErr
}

func TestDashboardPicksHappyPath(t *testing.T) {
	api := &fakeRecAPI{
		topSold:     []gateway.TopSoldItem{{ID: 1, Name: "Manzana roja", Category: "FRUTAS", Price: 2.5}},
		suggestions: []string{"Mango Tommy"},
	}
	picks := recommend.NewPipeline(api, logger.Nop()).DashboardPicks(context.Background(), 5)

	require.NoError(t, picks.TopSoldErr)
	require.NoError(t, picks.SuggestErr)
	assert.Len(t, picks.TopSold, 1)
	assert.Equal(t, []string{"Mango Tommy"}, picks.Suggestions)

	// El segundo paso recibe el resultado del primero como base.
	assert.Equal(t, api.topSold, api.suggestBase)
}

func TestDashboardPicksTopSoldFailureStillSuggests(t *testing.T) {
	api := &fakeRecAPI{
		topSoldErr:  errors.New("recommendation-service caído"),
		suggestions: []string{"Miel de abejas pura"},
	}
	picks := recommend.NewPipeline(api, logger.Nop()).DashboardPicks(context.Background(), 5)

	assert.Error(t, picks.TopSoldErr)
	assert.Nil(t, picks.TopSold)

	// Las sugerencias se piden igual, con base vacía.
	require.NoError(t, picks.SuggestErr)
	assert.Equal(t, []string{"Miel de abejas pura"}, picks.Suggestions)
	assert.Nil(t, api.suggestBase)
}

func TestDashboardPicksSuggestFailureKeepsTopSold(t *testing.T) {
	api := &fakeRecAPI{
		topSold:    []gateway.TopSoldItem{{Name: "Manzana roja"}},
		suggestErr: errors.New("timeout"),
	}
	picks := recommend.NewPipeline(api, logger.Nop()).DashboardPicks(context.Background(), 5)

	require.NoError(t, picks.TopSoldErr)
	assert.Len(t, picks.TopSold, 1)
	assert.Error(t, picks.SuggestErr)
}
