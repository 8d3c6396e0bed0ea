// Package hotel is the small catalog the chat core looks hotels up in.
package hotel

import (
	"context"
	"errors"
	"fmt"
	"hotelchat/backend/internal/errs"
	"hotelchat/backend/internal/models"
	"hotelchat/backend/internal/storage"
	"strings"

	"gorm.io/datatypes"
)

type CreateInput struct {
	PlaceID          string
	Name             string
	FormattedAddress string
	Lat              float64
	Lng              float64
	Rating           float64
	UserRatingsTotal int
	CompoundCode     *string
	Vicinity         *string
	Status           string
}

type Service struct {
	store storage.Storage
}

func NewService(store storage.Storage) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Hotel, error) {
	in.PlaceID = strings.TrimSpace(in.PlaceID)
	in.Name = strings.TrimSpace(in.Name)
	if in.Status == "" {
		in.Status = models.HotelAvailable
	}

	switch {
	case in.PlaceID == "":
		return nil, fmt.Errorf("place_id is required: %w", errs.ErrValidation)
	case in.Name == "":
		return nil, fmt.Errorf("name is required: %w", errs.ErrValidation)
	case strings.TrimSpace(in.FormattedAddress) == "":
		return nil, fmt.Errorf("formatted_address is required: %w", errs.ErrValidation)
	case in.Rating < 0 || in.Rating > 5:
		return nil, fmt.Errorf("rating must be between 0 and 5: %w", errs.ErrValidation)
	case in.Status != models.HotelAvailable && in.Status != models.HotelUnavailable:
		return nil, fmt.Errorf("status must be %s or %s: %w", models.HotelAvailable, models.HotelUnavailable, errs.ErrValidation)
	}

	h := &models.Hotel{
		PlaceID:          in.PlaceID,
		Name:             in.Name,
		FormattedAddress: in.FormattedAddress,
		Geometry:         datatypes.NewJSONType(models.Geometry{Location: models.Location{Lat: in.Lat, Lng: in.Lng}}),
		Rating:           in.Rating,
		UserRatingsTotal: in.UserRatingsTotal,
		CompoundCode:     in.CompoundCode,
		Vicinity:         in.Vicinity,
		Status:           in.Status,
	}
	if err := s.store.CreateHotel(ctx, h); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return nil, fmt.Errorf("hotel with place_id %s already exists: %w", h.PlaceID, errs.ErrConflict)
		}
		return nil, err
	}
	return h, nil
}

func (s *Service) GetByPlaceID(ctx context.Context, placeID string) (*models.Hotel, error) {
	return s.store.GetHotelByPlaceID(ctx, placeID)
}

func (s *Service) List(ctx context.Context) ([]models.Hotel, error) {
	return s.store.ListHotels(ctx)
}

func (s *Service) Search(ctx context.Context, name string) ([]models.Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name query parameter is required: %w", errs.ErrValidation)
	}
	return s.store.SearchHotels(ctx, name)
}
