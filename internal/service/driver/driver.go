package driver

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
)

type Service struct {
	repository Repository
	minBalance float64
}

// New принимает minBalance - порог кошелька для выхода в онлайн.
func New(repository Repository, minBalance float64) *Service {
	return &Service{
		repository: repository,
		minBalance: minBalance,
	}
}

func (s *Service) RegisterDriver(ctx context.Context, driverRegister entities.DriverRegister) (int64, error) {
	if driverRegister.UserID <= 0 {
		return 0, ErrInvalidUserID
	}
	if !isValidServiceClass(driverRegister.Service) {
		return 0, ErrInvalidServiceClass
	}

	id, err := s.repository.Create(ctx, driverRegister)
	if err != nil {
		return 0, fmt.Errorf("register driver: %w", err)
	}
	return id, nil
}

func (s *Service) GetDriver(ctx context.Context, id int64) (*entities.Driver, error) {
	if id <= 0 {
		return nil, ErrInvalidDriverID
	}

	driverEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}
	return driverEntity, nil
}

// ApproveDriver - безусловное действие администратора: pending -> offline.
// Класс обслуживания и флаг special можно задать прямо при одобрении.
func (s *Service) ApproveDriver(ctx context.Context, id int64, service *entities.ServiceClass, special *bool) (*entities.Driver, error) {
	if id <= 0 {
		return nil, ErrInvalidDriverID
	}
	if service != nil && !isValidServiceClass(*service) {
		return nil, ErrInvalidServiceClass
	}

	status := entities.DriverOffline
	driverModify := entities.DriverModify{
		ID:      &id,
		Status:  &status,
		Service: service,
		Special: special,
	}

	updated, err := s.repository.Update(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("approve driver: %w", err)
	}
	return updated, nil
}

// RejectDriver возвращает аккаунт в pending (отзыв одобрения).
func (s *Service) RejectDriver(ctx context.Context, id int64) (*entities.Driver, error) {
	if id <= 0 {
		return nil, ErrInvalidDriverID
	}

	status := entities.DriverPending
	updated, err := s.repository.Update(ctx, entities.DriverModify{
		ID:     &id,
		Status: &status,
	})
	if err != nil {
		return nil, fmt.Errorf("reject driver: %w", err)
	}
	return updated, nil
}

// SetOnline: гейт по балансу оценивается по свежей строке внутри UPDATE,
// а не по снапшоту - баланс мог упасть между чтением и записью.
func (s *Service) SetOnline(ctx context.Context, id int64) (*entities.Driver, error) {
	if id <= 0 {
		return nil, ErrInvalidDriverID
	}

	updated, err := s.repository.SetOnline(ctx, id, s.minBalance)
	if err != nil {
		return nil, fmt.Errorf("set driver online: %w", err)
	}
	return updated, nil
}

// SetOffline всегда проходит для одобренного водителя, гейтов нет.
func (s *Service) SetOffline(ctx context.Context, id int64) (*entities.Driver, error) {
	if id <= 0 {
		return nil, ErrInvalidDriverID
	}

	updated, err := s.repository.SetOffline(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("set driver offline: %w", err)
	}
	return updated, nil
}

// UpdateWalletBalance обновляет денормализованный баланс по событию леджера.
func (s *Service) UpdateWalletBalance(ctx context.Context, id int64, balance float64) error {
	if id <= 0 {
		return ErrInvalidDriverID
	}
	if balance < 0 {
		return ErrInvalidBalance
	}

	if err := s.repository.UpdateWalletBalance(ctx, id, balance); err != nil {
		return fmt.Errorf("update wallet balance: %w", err)
	}
	return nil
}
