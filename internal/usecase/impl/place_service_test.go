package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/errors"
	mockService "adresses/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceService_Search(t *testing.T) {
	searcher := mockService.NewMockPlaceSearcher(t)
	svc := NewPlaceService(searcher, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	places := []*entity.Place{{ID: "1", Label: "Lyon", Latitude: 45.76, Longitude: 4.83}}
	searcher.EXPECT().Search(ctx, "Lyon").Return(places, nil).Once()

	got, err := svc.Search(ctx, "Lyon")
	require.NoError(t, err)
	assert.Equal(t, places, got)

	searcher.EXPECT().Search(ctx, "Paris").Return(nil, errors.New("status 429")).Once()

	_, err = svc.Search(ctx, "Paris")
	assert.ErrorIs(t, err, domainerrors.ErrPlaceSearchFailed)
}
