package impl

import (
	"context"
	"log/slog"

	deliverycontext "adresses/internal/delivery/context"
	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/domain/service"
	"adresses/internal/usecase"
)

type placeService struct {
	searcher service.PlaceSearcher
	logger   *slog.Logger
}

// NewPlaceService creates the place search use case.
func NewPlaceService(searcher service.PlaceSearcher, logger *slog.Logger) usecase.PlaceUsecase {
	return &placeService{searcher: searcher, logger: logger}
}

func (s *placeService) Search(ctx context.Context, query string) ([]*entity.Place, error) {
	places, err := s.searcher.Search(ctx, query)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Place search failed",
			slog.String("query", query),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrPlaceSearchFailed.WithDetails(err.Error())
	}

	return places, nil
}
