package service

import (
	"context"

	"adresses/internal/domain/entity"
)

// PlaceSearcher resolves free text into candidate places with coordinates.
type PlaceSearcher interface {
	Search(ctx context.Context, query string) ([]*entity.Place, error)
}
