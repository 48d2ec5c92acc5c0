package service

import (
	"context"
	"strings"

	"github.com/hellman53/book-my-doctor-sub000/data"
)

type prefsService struct {
	store *data.PrefsStore
}

func (s *prefsService) Favorites(ctx context.Context, patientID string) ([]int, error) {
	return s.store.Favorites(ctx, patientID)
}

func (s *prefsService) AddFavorite(ctx context.Context, patientID string, doctorID int) error {
	if doctorID <= 0 {
		return validationErrorf("doctor is required")
	}

	return s.store.AddFavorite(ctx, patientID, doctorID)
}

func (s *prefsService) RemoveFavorite(ctx context.Context, patientID string, doctorID int) error {
	return s.store.RemoveFavorite(ctx, patientID, doctorID)
}

func (s *prefsService) RecentSearches(ctx context.Context, patientID string) ([]string, error) {
	return s.store.RecentSearches(ctx, patientID)
}

func (s *prefsService) AddSearch(ctx context.Context, patientID, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return validationErrorf("search query is required")
	}

	return s.store.AddSearch(ctx, patientID, query)
}
