package storage

import (
	"context"
	"errors"
	"fmt"
	"hotelchat/backend/internal/config"
	"hotelchat/backend/internal/errs"
	"hotelchat/backend/internal/models"
	"log/slog"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ErrDuplicate is returned when an insert hits a unique constraint.
var ErrDuplicate = fmt.Errorf("duplicate key: %w", errs.ErrConflict)

type Storage interface {
	// Transaction runs fn against a Storage bound to a single database
	// transaction. Returning an error from fn rolls everything back.
	Transaction(ctx context.Context, fn func(tx Storage) error) error

	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsersByRole(ctx context.Context, role string) ([]models.User, error)
	ListUserIDsByRole(ctx context.Context, role string) ([]uint, error)
	UpdateUserRole(ctx context.Context, id uint, role string) error
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error

	CreateHotel(ctx context.Context, hotel *models.Hotel) error
	GetHotelByPlaceID(ctx context.Context, placeID string) (*models.Hotel, error)
	ListHotels(ctx context.Context) ([]models.Hotel, error)
	SearchHotels(ctx context.Context, name string) ([]models.Hotel, error)

	CreateRoom(ctx context.Context, room *models.ChatRoom) error
	GetRoom(ctx context.Context, roomID string) (*models.ChatRoom, error)
	RoomExists(ctx context.Context, roomID string) (bool, error)
	ListRooms(ctx context.Context) ([]models.ChatRoom, error)
	ListRoomsForUser(ctx context.Context, userID uint) ([]models.ChatRoom, error)
	TouchRoom(ctx context.Context, roomID string, at time.Time) error
	DeleteRoomCascade(ctx context.Context, roomID string) error

	AddParticipants(ctx context.Context, roomID string, userIDs []uint) error
	IsParticipant(ctx context.Context, roomID string, userID uint) (bool, error)

	CreateMessage(ctx context.Context, msg *models.Message) error
	GetMessage(ctx context.Context, id string) (*models.Message, error)

	PublishRoomEvent(ctx context.Context, event models.RoomEvent) error
}

type Service struct {
	DB *gorm.DB
	// Redis is optional; without it room events are not published.
	Redis *redis.Client
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
	}
}

func (s *Service) Transaction(ctx context.Context, fn func(tx Storage) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Service{DB: tx, Redis: s.Redis})
	})
}

// Open connects to the database named by cfg. Errors are translated into
// gorm's portable sentinels so duplicate keys look the same on both drivers.
func Open(cfg config.Database) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(slog.Default()),
	}

	switch cfg.Driver {
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.Source), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.Source, err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// one writer; also keeps an in-memory database alive across calls
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	case "postgres":
		db, err := gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// newGormLogger routes gorm's query log through slog. Record-not-found misses
// surface as ErrNotFound and are not logged.
func newGormLogger(log *slog.Logger) gormlogger.Interface {
	return gormlogger.NewSlogLogger(log, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// Migrate registers the participant join model and creates or updates every table.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.ChatRoom{}, "Participants", &models.Participant{}); err != nil {
		return fmt.Errorf("setup join table: %w", err)
	}
	return db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.ChatRoom{},
		&models.Participant{},
		&models.Message{},
	)
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// notFound converts gorm's missing-record error into the shared taxonomy.
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, errs.ErrNotFound)
	}
	slog.Error("storage query failed", slog.String("entity", what), slog.Any("err", err))
	return err
}
