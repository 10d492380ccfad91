package directory

import (
	"context"
	"errors"
	"fmt"

	directoryRepo "github.com/haruyasu/booking-service/internal/infra/storage/directory"
	"github.com/haruyasu/booking-service/internal/service/directory/models"
)

// Service сервис справочника магазинов и сотрудников
type Service struct {
	repo   DirectoryRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(repo DirectoryRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListStores получает все магазины, отсортированные по названию
func (s *Service) ListStores(ctx context.Context) (*models.StoreListResponse, error) {
	s.logger.Info("ListStores: fetching stores")

	stores, err := s.repo.ListStores(ctx)
	if err != nil {
		s.logger.Error("ListStores: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListStores - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListStores: successfully fetched %d stores", len(stores))
	return models.FromDomainStoreList(stores), nil
}

// ListStaff получает сотрудников магазина
func (s *Service) ListStaff(ctx context.Context, storeID int64) (*models.StaffListResponse, error) {
	s.logger.Info("ListStaff: fetching staff for store=%d", storeID)

	// Магазин должен существовать, иначе not found вместо пустого списка
	if _, err := s.repo.GetStoreByID(ctx, storeID); err != nil {
		if errors.Is(err, directoryRepo.ErrStoreNotFound) {
			s.logger.Warn("ListStaff: store id=%d not found", storeID)
			return nil, ErrStoreNotFound
		}
		s.logger.Error("ListStaff: failed to get store id=%d: %v", storeID, err)
		return nil, fmt.Errorf("%w: ListStaff - repository error: %v", ErrInternal, err)
	}

	staff, err := s.repo.ListStaffByStore(ctx, storeID)
	if err != nil {
		s.logger.Error("ListStaff: repository error for store=%d: %v", storeID, err)
		return nil, fmt.Errorf("%w: ListStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListStaff: successfully fetched %d staff for store=%d", len(staff), storeID)
	return models.FromDomainStaffList(storeID, staff), nil
}
