package services

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"hotel-reservations/apperrors"
	"hotel-reservations/models"
)

// MySQL duplicate-key error, raised on the room_number unique index.
const mysqlErrDuplicateEntry = 1062

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry
}

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func validateRoom(room *models.Room) error {
	if room.Price < 0 {
		return apperrors.InvalidRequestf("price cannot be negative")
	}
	if room.RoomNumber <= 0 {
		return apperrors.InvalidRequestf("room number must be positive")
	}
	return nil
}

func (s *RoomService) Create(room *models.Room) error {
	if err := validateRoom(room); err != nil {
		return err
	}
	if room.RoomType == "" {
		room.RoomType = models.RoomTypeSimple
	}
	if err := s.DB.Create(room).Error; err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("%w: room number %d already exists", apperrors.ErrConflict, room.RoomNumber)
		}
		return fmt.Errorf("failed to save room: %w", err)
	}
	return nil
}

// CreateSuite persists a suite room. The kind tag is forced to SUITE and
// the room count defaults to two.
func (s *RoomService) CreateSuite(room *models.Room) error {
	room.RoomType = models.RoomTypeSuite
	if room.RoomCount == 0 {
		room.RoomCount = 2
	}
	if room.RoomCount < 1 {
		return apperrors.InvalidRequestf("room count must be at least 1")
	}
	if err := validateRoom(room); err != nil {
		return err
	}
	if err := s.DB.Create(room).Error; err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("%w: room number %d already exists", apperrors.ErrConflict, room.RoomNumber)
		}
		return fmt.Errorf("failed to save suite: %w", err)
	}
	return nil
}

func (s *RoomService) GetAll(page, size int) ([]models.Room, int64, error) {
	var total int64
	if err := s.DB.Model(&models.Room{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count rooms: %w", err)
	}
	var rooms []models.Room
	if err := s.DB.Order("id").Offset(page * size).Limit(size).Find(&rooms).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, total, nil
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, apperrors.NotFoundf("room %d not found", id)
		}
		return models.Room{}, fmt.Errorf("failed to find room: %w", err)
	}
	return room, nil
}

func (s *RoomService) Update(id uint, updated models.Room) (models.Room, error) {
	room, err := s.GetByID(id)
	if err != nil {
		return models.Room{}, err
	}
	if err := validateRoom(&updated); err != nil {
		return models.Room{}, err
	}

	room.RoomNumber = updated.RoomNumber
	room.Price = updated.Price
	if updated.RoomType != "" {
		room.RoomType = updated.RoomType
	}
	room.SuiteName = updated.SuiteName
	room.RoomCount = updated.RoomCount
	room.Jacuzzi = updated.Jacuzzi

	if err := s.DB.Save(&room).Error; err != nil {
		return models.Room{}, fmt.Errorf("failed to update room: %w", err)
	}
	return room, nil
}

// Delete removes a room. Deliberately no check for reservations still
// referencing it.
func (s *RoomService) Delete(id uint) error {
	result := s.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete room: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("room %d not found", id)
	}
	return nil
}

func (s *RoomService) ByType(roomType string) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Where("room_type = ?", roomType).Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms by type: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) ByMaxPrice(maxPrice float64) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Where("price <= ?", maxPrice).Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms by price: %w", err)
	}
	return rooms, nil
}
