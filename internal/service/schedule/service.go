package schedule

import (
	"context"
	"fmt"

	"github.com/careconnect/booking-service/internal/domain"
	"github.com/careconnect/booking-service/internal/service/schedule/models"
	"github.com/careconnect/booking-service/pkg/types"
)

// Service сервис для работы с конфигурацией расписания
type Service struct {
	configRepo ConfigRepository
	userClient UserServiceClient
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	configRepo ConfigRepository,
	userClient UserServiceClient,
	logger Logger,
) *Service {
	return &Service{
		configRepo: configRepo,
		userClient: userClient,
		logger:     logger,
	}
}

// Get возвращает текущую конфигурацию расписания
func (s *Service) Get(ctx context.Context) (*models.ConfigResponse, error) {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainConfig(cfg), nil
}

// Update частично обновляет конфигурацию: указанные поля накладываются на
// текущую конфигурацию, затем она перезаписывается целиком. Доступно только
// администратору.
//
// Вырожденное окно (start >= end) намеренно не отклоняется: движок слотов
// отвечает на него пустым списком, и так администратор может временно
// закрыть запись. Длительность слота и горизонт проверяются на диапазон.
func (s *Service) Update(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating schedule config by user=%d", req.UserID)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Update: failed to get current config: %v", err)
		return nil, fmt.Errorf("%w: Update - failed to get current config: %v", ErrInternal, err)
	}

	if req.WorkingHoursStart != nil {
		ts := types.TimeString(*req.WorkingHoursStart)
		if err := ts.Validate(); err != nil {
			s.logger.Warn("Update: invalid workingHoursStart=%q", *req.WorkingHoursStart)
			return nil, fmt.Errorf("%w: workingHoursStart must be HH:MM", ErrInvalidInput)
		}
		cfg.WorkingHoursStart = ts
	}
	if req.WorkingHoursEnd != nil {
		ts := types.TimeString(*req.WorkingHoursEnd)
		if err := ts.Validate(); err != nil {
			s.logger.Warn("Update: invalid workingHoursEnd=%q", *req.WorkingHoursEnd)
			return nil, fmt.Errorf("%w: workingHoursEnd must be HH:MM", ErrInvalidInput)
		}
		cfg.WorkingHoursEnd = ts
	}
	if req.SlotDurationMinutes != nil {
		d := *req.SlotDurationMinutes
		if d < domain.MinSlotDurationMinutes || d > domain.MaxSlotDurationMinutes {
			s.logger.Warn("Update: slotDurationMinutes=%d is out of range", d)
			return nil, fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
				ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
		}
		cfg.SlotDurationMinutes = d
	}
	if req.MaxAdvanceDays != nil {
		days := *req.MaxAdvanceDays
		if days < domain.MinMaxAdvanceDays || days > domain.MaxMaxAdvanceDays {
			s.logger.Warn("Update: maxAdvanceDays=%d is out of range", days)
			return nil, fmt.Errorf("%w: maxAdvanceDays must be between %d and %d",
				ErrInvalidInput, domain.MinMaxAdvanceDays, domain.MaxMaxAdvanceDays)
		}
		cfg.MaxAdvanceDays = days
	}
	if req.NotificationAddress != nil {
		cfg.NotificationAddress = *req.NotificationAddress
	}

	if cfg.IsDegenerate() {
		s.logger.Warn("Update: saved config produces no slots (start=%s, end=%s, duration=%d)",
			cfg.WorkingHoursStart, cfg.WorkingHoursEnd, cfg.SlotDurationMinutes)
	}

	if err := s.configRepo.Set(ctx, cfg); err != nil {
		s.logger.Error("Update: failed to persist config: %v", err)
		return nil, fmt.Errorf("%w: Update - failed to persist config: %v", ErrInternal, err)
	}

	s.logger.Info("Update: schedule config updated by user=%d", req.UserID)
	return models.FromDomainConfig(cfg), nil
}

// checkAdminAccess проверяет, что пользователь - администратор
func (s *Service) checkAdminAccess(ctx context.Context, userID int64) error {
	isAdmin, err := s.userClient.IsAdmin(ctx, userID)
	if err != nil {
		s.logger.Error("checkAdminAccess: failed to check role for user=%d: %v", userID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to check role: %v", ErrInternal, err)
	}
	if !isAdmin {
		s.logger.Warn("checkAdminAccess: user=%d is not an admin", userID)
		return ErrAccessDenied
	}
	return nil
}
