package usecase

import (
	"context"

	"adresses/internal/domain/entity"
)

// PlaceUsecase defines the place-name search used by the creation form.
type PlaceUsecase interface {
	// Search returns no place without a remote call when the trimmed query is too short.
	Search(ctx context.Context, query string) ([]*entity.Place, error)
}
