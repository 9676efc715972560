package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotel-reservations/apperrors"
	"hotel-reservations/events"
	"hotel-reservations/models"
	"hotel-reservations/utils"
)

// ReservationService orchestrates the reservation lifecycle: creation,
// confirm/cancel transitions, pricing and lookups.
type ReservationService struct {
	DB     *gorm.DB
	Events events.Publisher
}

func NewReservationService(db *gorm.DB, publisher events.Publisher) *ReservationService {
	return &ReservationService{DB: db, Events: publisher}
}

// validateReservationDates rejects ranges where the end is not strictly
// after the start (same-day stays are disallowed) or the start is before
// today. Dates are compared at day granularity in UTC.
func validateReservationDates(start, end time.Time) error {
	if !end.After(start) {
		return apperrors.InvalidRequestf("end date must be after start date")
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(today) {
		return apperrors.InvalidRequestf("start date cannot be in the past")
	}
	return nil
}

// validateDiscountRate rejects rates outside [0,1]. Applied only on
// online/VIP paths.
func validateDiscountRate(rate float64) error {
	if rate < 0 || rate > 1 {
		return apperrors.InvalidRequestf("discount rate must be between 0 and 1")
	}
	return nil
}

func (s *ReservationService) withRelations() *gorm.DB {
	return s.DB.Preload("Client").Preload("Room").Preload("Employee")
}

func (s *ReservationService) GetAll(page, size int) ([]models.Reservation, int64, error) {
	var total int64
	if err := s.DB.Model(&models.Reservation{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reservations: %w", err)
	}
	var reservations []models.Reservation
	err := s.withRelations().
		Order("id").
		Offset(page * size).
		Limit(size).
		Find(&reservations).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, total, nil
}

func (s *ReservationService) GetByID(id uint) (models.Reservation, error) {
	var reservation models.Reservation
	if err := s.withRelations().First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Reservation{}, apperrors.NotFoundf("reservation %d not found", id)
		}
		return models.Reservation{}, fmt.Errorf("failed to find reservation: %w", err)
	}
	return reservation, nil
}

func (s *ReservationService) findClient(id uint) (models.Client, error) {
	var client models.Client
	if err := s.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Client{}, apperrors.NotFoundf("client %d not found", id)
		}
		return models.Client{}, fmt.Errorf("failed to find client: %w", err)
	}
	return client, nil
}

func (s *ReservationService) findRoom(id uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, apperrors.NotFoundf("room %d not found", id)
		}
		return models.Room{}, fmt.Errorf("failed to find room: %w", err)
	}
	return room, nil
}

func (s *ReservationService) findEmployee(id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := s.DB.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("employee %d not found", id)
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	return &employee, nil
}

// Create builds and persists a standard PENDING reservation. The employee,
// when given, is recorded directly without implying a status transition.
func (s *ReservationService) Create(start, end time.Time, clientID, roomID uint, employeeID *uint) (models.Reservation, error) {
	if err := validateReservationDates(start, end); err != nil {
		return models.Reservation{}, err
	}

	client, err := s.findClient(clientID)
	if err != nil {
		return models.Reservation{}, err
	}
	room, err := s.findRoom(roomID)
	if err != nil {
		return models.Reservation{}, err
	}

	var employee *models.Employee
	if employeeID != nil {
		if employee, err = s.findEmployee(*employeeID); err != nil {
			return models.Reservation{}, err
		}
	}

	reservation := models.Reservation{
		ReferenceCode: utils.NewReferenceCode(),
		StartDate:     start,
		EndDate:       end,
		Status:        models.StatusPending,
		Kind:          models.KindStandard,
		ClientID:      client.ID,
		RoomID:        room.ID,
		Client:        client,
		Room:          room,
	}
	if employee != nil {
		reservation.Employee = employee
		reservation.EmployeeID = &employee.ID
	}

	if err := s.DB.Create(&reservation).Error; err != nil {
		return models.Reservation{}, fmt.Errorf("failed to save reservation: %w", err)
	}
	return reservation, nil
}

// CreateOnline builds and persists an online PENDING reservation with a
// platform attribution and a discount rate in [0,1]. No employee is
// assigned at creation; that happens only through confirm/cancel.
func (s *ReservationService) CreateOnline(start, end time.Time, clientID, roomID uint, platform string, discountRate float64) (models.Reservation, error) {
	if err := validateReservationDates(start, end); err != nil {
		return models.Reservation{}, err
	}
	if err := validateDiscountRate(discountRate); err != nil {
		return models.Reservation{}, err
	}

	client, err := s.findClient(clientID)
	if err != nil {
		return models.Reservation{}, err
	}
	room, err := s.findRoom(roomID)
	if err != nil {
		return models.Reservation{}, err
	}

	if platform == "" {
		platform = models.DefaultPlatform
	}
	reservation := models.Reservation{
		ReferenceCode: utils.NewReferenceCode(),
		StartDate:     start,
		EndDate:       end,
		Status:        models.StatusPending,
		Kind:          models.KindOnline,
		ClientID:      client.ID,
		RoomID:        room.ID,
		Client:        client,
		Room:          room,
		Platform:      platform,
		DiscountRate:  discountRate,
	}

	if err := s.DB.Create(&reservation).Error; err != nil {
		return models.Reservation{}, fmt.Errorf("failed to save online reservation: %w", err)
	}
	return reservation, nil
}

// Confirm applies the CONFIRMED transition and persists the result.
func (s *ReservationService) Confirm(id uint, employeeID *uint) (models.Reservation, error) {
	return s.transition(id, employeeID, (*models.Reservation).Confirm)
}

// Cancel applies the CANCELLED transition and persists the result.
func (s *ReservationService) Cancel(id uint, employeeID *uint) (models.Reservation, error) {
	return s.transition(id, employeeID, (*models.Reservation).Cancel)
}

func (s *ReservationService) transition(id uint, employeeID *uint, apply func(*models.Reservation, *models.Employee)) (models.Reservation, error) {
	reservation, err := s.GetByID(id)
	if err != nil {
		return models.Reservation{}, err
	}

	var employee *models.Employee
	if employeeID != nil {
		if employee, err = s.findEmployee(*employeeID); err != nil {
			return models.Reservation{}, err
		}
	}

	apply(&reservation, employee)

	// Cancelling without an employee must clear the column, so the update
	// goes through a map rather than a struct (gorm skips nil fields on
	// struct updates).
	if err := s.DB.Model(&reservation).Updates(map[string]interface{}{
		"status":         reservation.Status,
		"employee_id":    reservation.EmployeeID,
		"status_history": reservation.StatusHistory,
	}).Error; err != nil {
		return models.Reservation{}, fmt.Errorf("failed to save reservation: %w", err)
	}

	s.publishStatus(reservation, models.ActorName(employee))
	return reservation, nil
}

func (s *ReservationService) publishStatus(reservation models.Reservation, actor string) {
	event := events.StatusEvent{
		ReservationID: reservation.ID,
		ReferenceCode: reservation.ReferenceCode,
		Status:        reservation.Status,
		Actor:         actor,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}
	// Best effort; the publisher logs its own failures.
	_ = s.Events.PublishStatus(context.Background(), event)
}

// Amount resolves the reservation and computes its total charge.
func (s *ReservationService) Amount(id uint) (float64, error) {
	reservation, err := s.GetByID(id)
	if err != nil {
		return 0, err
	}
	return reservation.Amount(), nil
}

// Update overwrites a reservation's dates, status and references after
// re-validating the date range and resolving the new references.
func (s *ReservationService) Update(id uint, start, end time.Time, status string, clientID, roomID uint, employeeID *uint) (models.Reservation, error) {
	reservation, err := s.GetByID(id)
	if err != nil {
		return models.Reservation{}, err
	}
	if err := validateReservationDates(start, end); err != nil {
		return models.Reservation{}, err
	}

	client, err := s.findClient(clientID)
	if err != nil {
		return models.Reservation{}, err
	}
	room, err := s.findRoom(roomID)
	if err != nil {
		return models.Reservation{}, err
	}
	var employee *models.Employee
	if employeeID != nil {
		if employee, err = s.findEmployee(*employeeID); err != nil {
			return models.Reservation{}, err
		}
	}

	reservation.StartDate = start
	reservation.EndDate = end
	reservation.Status = status
	reservation.ClientID = client.ID
	reservation.Client = client
	reservation.RoomID = room.ID
	reservation.Room = room
	reservation.Employee = employee
	if employee != nil {
		reservation.EmployeeID = &employee.ID
	} else {
		reservation.EmployeeID = nil
	}

	if err := s.DB.Model(&reservation).Updates(map[string]interface{}{
		"start_date":  reservation.StartDate,
		"end_date":    reservation.EndDate,
		"status":      reservation.Status,
		"client_id":   reservation.ClientID,
		"room_id":     reservation.RoomID,
		"employee_id": reservation.EmployeeID,
	}).Error; err != nil {
		return models.Reservation{}, fmt.Errorf("failed to update reservation: %w", err)
	}
	return reservation, nil
}

// Delete removes a reservation. Deliberately no check for its status; a
// confirmed reservation can be deleted outright.
func (s *ReservationService) Delete(id uint) error {
	result := s.DB.Delete(&models.Reservation{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete reservation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("reservation %d not found", id)
	}
	return nil
}

func (s *ReservationService) ByStatus(status string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.withRelations().Where("status = ?", status).Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations by status: %w", err)
	}
	return reservations, nil
}

func (s *ReservationService) ByClient(clientID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.withRelations().Where("client_id = ?", clientID).Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations by client: %w", err)
	}
	return reservations, nil
}

func (s *ReservationService) ByRoom(roomID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.withRelations().Where("room_id = ?", roomID).Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations by room: %w", err)
	}
	return reservations, nil
}

// BetweenDates lists reservations whose start date falls inside [start, end].
func (s *ReservationService) BetweenDates(start, end time.Time) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.withRelations().Where("start_date BETWEEN ? AND ?", start, end).Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations by date range: %w", err)
	}
	return reservations, nil
}
