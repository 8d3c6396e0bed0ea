package storage

import (
	"context"
	"fmt"
	"hotelchat/backend/internal/errs"
	"hotelchat/backend/internal/models"
	"log/slog"
	"strings"
	"time"
)

func (s *Service) CreateUser(ctx context.Context, user *models.User) error {
	err := s.DB.WithContext(ctx).Create(user).Error
	if isDuplicateKey(err) {
		return fmt.Errorf("user %s: %w", user.Email, ErrDuplicate)
	}
	if err != nil {
		slog.Error("failed to create user", slog.String("email", user.Email), slog.Any("err", err))
		return err
	}
	return nil
}

func (s *Service) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err, fmt.Sprintf("user %d", id))
	}
	return &user, nil
}

func (s *Service) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err, "user "+email)
	}
	return &user, nil
}

func (s *Service) ListUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	var users []models.User
	err := s.DB.WithContext(ctx).Where("role = ?", role).Order("id ASC").Find(&users).Error
	return users, err
}

// ListUserIDsByRole reads the ids only; it runs on every room creation.
func (s *Service) ListUserIDsByRole(ctx context.Context, role string) ([]uint, error) {
	var ids []uint
	err := s.DB.WithContext(ctx).Model(&models.User{}).
		Where("role = ?", role).
		Order("id ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func (s *Service) UpdateUserRole(ctx context.Context, id uint, role string) error {
	res := s.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"role":        role,
			"is_employee": role == models.RoleOperator,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", id, errs.ErrNotFound)
	}
	return nil
}

func (s *Service) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	return s.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}

func (s *Service) CreateHotel(ctx context.Context, hotel *models.Hotel) error {
	err := s.DB.WithContext(ctx).Create(hotel).Error
	if isDuplicateKey(err) {
		return fmt.Errorf("hotel %s: %w", hotel.PlaceID, ErrDuplicate)
	}
	return err
}

func (s *Service) GetHotelByPlaceID(ctx context.Context, placeID string) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.WithContext(ctx).Where("place_id = ?", placeID).First(&hotel).Error; err != nil {
		return nil, notFound(err, "hotel "+placeID)
	}
	return &hotel, nil
}

func (s *Service) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := s.DB.WithContext(ctx).Order("name ASC").Find(&hotels).Error
	return hotels, err
}

// SearchHotels matches name case-insensitively anywhere in the hotel name.
func (s *Service) SearchHotels(ctx context.Context, name string) ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := s.DB.WithContext(ctx).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%").
		Order("name ASC").
		Find(&hotels).Error
	return hotels, err
}
