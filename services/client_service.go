package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hotel-reservations/apperrors"
	"hotel-reservations/models"
)

type ClientService struct {
	DB *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{DB: db}
}

func validateClient(client *models.Client) error {
	if strings.TrimSpace(client.LastName) == "" {
		return apperrors.InvalidRequestf("last name cannot be blank")
	}
	if strings.TrimSpace(client.Email) == "" {
		return apperrors.InvalidRequestf("email cannot be blank")
	}
	return nil
}

func (s *ClientService) Create(client *models.Client) error {
	if err := validateClient(client); err != nil {
		return err
	}
	if err := s.DB.Create(client).Error; err != nil {
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

// CreateVIP persists a VIP client after checking the discount rate bounds.
func (s *ClientService) CreateVIP(client *models.Client) error {
	client.VIP = true
	if err := validateDiscountRate(client.DiscountRate); err != nil {
		return err
	}
	if err := validateClient(client); err != nil {
		return err
	}
	if err := s.DB.Create(client).Error; err != nil {
		return fmt.Errorf("failed to save VIP client: %w", err)
	}
	return nil
}

func (s *ClientService) GetAll(page, size int) ([]models.Client, int64, error) {
	var total int64
	if err := s.DB.Model(&models.Client{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}
	var clients []models.Client
	if err := s.DB.Order("id").Offset(page * size).Limit(size).Find(&clients).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, total, nil
}

func (s *ClientService) GetByID(id uint) (models.Client, error) {
	var client models.Client
	if err := s.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Client{}, apperrors.NotFoundf("client %d not found", id)
		}
		return models.Client{}, fmt.Errorf("failed to find client: %w", err)
	}
	return client, nil
}

func (s *ClientService) Update(id uint, updated models.Client) (models.Client, error) {
	client, err := s.GetByID(id)
	if err != nil {
		return models.Client{}, err
	}
	if err := validateClient(&updated); err != nil {
		return models.Client{}, err
	}

	client.LastName = updated.LastName
	client.FirstName = updated.FirstName
	client.Email = updated.Email
	client.Phone = updated.Phone

	if err := s.DB.Save(&client).Error; err != nil {
		return models.Client{}, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

// Delete removes a client. Deliberately no check for reservations still
// referencing it.
func (s *ClientService) Delete(id uint) error {
	result := s.DB.Delete(&models.Client{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("client %d not found", id)
	}
	return nil
}

func (s *ClientService) ByLastName(lastName string) ([]models.Client, error) {
	var clients []models.Client
	if err := s.DB.Where("last_name = ?", lastName).Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients by name: %w", err)
	}
	return clients, nil
}
