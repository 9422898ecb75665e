package bookings

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/careconnect/booking-service/internal/domain"
	bookingRepo "github.com/careconnect/booking-service/internal/infra/storage/bookings"
	"github.com/careconnect/booking-service/internal/service/bookings/models"
)

// Service сервис для чтения и администрирования бронирований
type Service struct {
	bookingRepo BookingRepository
	userClient  UserServiceClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	userClient UserServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		userClient:  userClient,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только свои бронирования, администратор - любые
func (s *Service) GetByID(ctx context.Context, id string, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%s", userID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// List возвращает все бронирования в порядке добавления.
// Лента админ-консоли, доступна только администратору.
func (s *Service) List(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching all bookings for user=%d", userID)

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// ListByRequester возвращает бронирования пользователя.
// Пользователь видит только свой список, администратор - любой.
func (s *Service) ListByRequester(ctx context.Context, requesterID, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("ListByRequester: fetching bookings of user=%d for user=%d", requesterID, userID)

	if requesterID != userID {
		if err := s.checkAdminAccess(ctx, userID); err != nil {
			return nil, err
		}
	}

	bookings, err := s.bookingRepo.ListByRequester(ctx, requesterID)
	if err != nil {
		s.logger.Error("ListByRequester: repository error for user=%d: %v", requesterID, err)
		return nil, fmt.Errorf("%w: ListByRequester - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByRequester: successfully fetched %d bookings for user=%d", len(bookings), requesterID)
	return models.FromDomainBookingList(bookings), nil
}

// Delete навсегда удаляет бронирование независимо от статуса. Доступно
// только администратору. Уведомления при удалении не отправляются.
func (s *Service) Delete(ctx context.Context, id string, userID int64) error {
	s.logger.Info("Delete: deleting booking id=%s by user=%d", id, userID)

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		return err
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", id)
	return nil
}

// csvHeader колонки CSV выгрузки
var csvHeader = []string{
	"id", "date", "timeSlot", "status",
	"requesterName", "requesterEmail", "subjectName", "location", "notes", "createdAt",
}

// ExportCSV выгружает все бронирования в CSV в порядке добавления.
// Доступно только администратору.
func (s *Service) ExportCSV(ctx context.Context, userID int64) ([]byte, error) {
	s.logger.Info("ExportCSV: exporting bookings by user=%d", userID)

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("ExportCSV: repository error: %v", err)
		return nil, fmt.Errorf("%w: ExportCSV - repository error: %v", ErrInternal, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("%w: ExportCSV - write header: %v", ErrInternal, err)
	}
	for _, b := range bookings {
		notes := ""
		if b.Notes != nil {
			notes = *b.Notes
		}
		record := []string{
			b.ID,
			b.Date.Format(domain.DateFormat),
			b.TimeSlot,
			string(b.Status),
			b.RequesterName,
			b.RequesterEmail,
			b.SubjectName,
			b.Location,
			notes,
			b.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("%w: ExportCSV - write record: %v", ErrInternal, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: ExportCSV - flush: %v", ErrInternal, err)
	}

	s.logger.Info("ExportCSV: exported %d bookings", len(bookings))
	return buf.Bytes(), nil
}

// checkUserAccess проверяет, что пользователь - заявитель бронирования
// либо администратор
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.RequesterID == userID {
		return nil
	}
	if err := s.checkAdminAccess(ctx, userID); err != nil {
		return ErrAccessDenied
	}
	return nil
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
