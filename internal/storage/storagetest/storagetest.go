// Package storagetest provides an isolated, migrated in-memory database for tests.
package storagetest

import (
	"fmt"
	"hotelchat/backend/internal/config"
	"hotelchat/backend/internal/models"
	"hotelchat/backend/internal/storage"
	"testing"

	"gorm.io/datatypes"
)

// New returns a storage service backed by a fresh in-memory SQLite database.
// Redis is disabled.
func New(t testing.TB) *storage.Service {
	t.Helper()

	db, err := storage.Open(config.Database{Driver: "sqlite", Source: ":memory:"})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return storage.NewStorageService(db, nil)
}

// User inserts a user with the given email and role.
func User(t testing.TB, s *storage.Service, email, role string) *models.User {
	t.Helper()

	u := &models.User{
		Username:  "user-" + email,
		Firstname: "Test",
		Lastname:  "User",
		Email:     email,
		Password:  "x",
		Profile:   datatypes.NewJSONType(models.Profile{FirstName: "Test", LastName: "User"}),
		Role:      role,
	}
	u.IsEmployee = role == models.RoleOperator
	if err := s.DB.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return u
}

// Hotel inserts an available hotel with the given place id and name.
func Hotel(t testing.TB, s *storage.Service, placeID, name string) *models.Hotel {
	t.Helper()

	h := &models.Hotel{
		PlaceID:          placeID,
		Name:             name,
		FormattedAddress: fmt.Sprintf("%s street 1", name),
		Geometry:         datatypes.NewJSONType(models.Geometry{Location: models.Location{Lat: 50.45, Lng: 30.52}}),
		Rating:           4.5,
		Status:           models.HotelAvailable,
	}
	if err := s.DB.Create(h).Error; err != nil {
		t.Fatalf("create hotel %s: %v", placeID, err)
	}
	return h
}
