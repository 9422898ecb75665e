package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/careconnect/booking-service/internal/domain"
	"github.com/careconnect/booking-service/internal/infra/storage/kv"
)

// bookingsKey ключ коллекции бронирований в key-value хранилище
const bookingsKey = "bookings"

// Repository хранит коллекцию бронирований как единый JSON документ в
// key-value хранилище. Каждая запись - это read-modify-write всего
// документа; хранилище не дает транзакций, политика - last-write-wins.
type Repository struct {
	store kv.Store
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store}
}

// storedBooking персистентное представление бронирования
type storedBooking struct {
	ID             string  `json:"id"`
	RequesterID    int64   `json:"requesterId"`
	RequesterEmail string  `json:"requesterEmail"`
	RequesterName  string  `json:"requesterName"`
	SubjectName    string  `json:"subjectName"`
	Location       string  `json:"location"`
	Date           string  `json:"date"` // YYYY-MM-DD
	TimeSlot       string  `json:"timeSlot"`
	Notes          *string `json:"notes,omitempty"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"createdAt"` // RFC 3339
}

// List возвращает все бронирования в порядке добавления
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	return r.load(ctx)
}

// ListByDate возвращает бронирования на указанную дату в порядке добавления
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Booking, 0)
	for _, b := range all {
		if b.OnDate(date) {
			result = append(result, b)
		}
	}
	return result, nil
}

// ListByRequester возвращает бронирования пользователя в порядке добавления
func (r *Repository) ListByRequester(ctx context.Context, requesterID int64) ([]*domain.Booking, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Booking, 0)
	for _, b := range all {
		if b.RequesterID == requesterID {
			result = append(result, b)
		}
	}
	return result, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, b := range all {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, ErrBookingNotFound
}

// Create добавляет бронирование в конец коллекции
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) error {
	all, err := r.load(ctx)
	if err != nil {
		return err
	}

	all = append(all, booking)
	return r.save(ctx, all)
}

// UpdateStatus меняет статус бронирования, остальные поля не трогает
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	all, err := r.load(ctx)
	if err != nil {
		return err
	}

	found := false
	for _, b := range all {
		if b.ID == id {
			b.Status = status
			found = true
			break
		}
	}
	if !found {
		return ErrBookingNotFound
	}

	return r.save(ctx, all)
}

// Delete удаляет бронирование навсегда, независимо от статуса
func (r *Repository) Delete(ctx context.Context, id string) error {
	all, err := r.load(ctx)
	if err != nil {
		return err
	}

	filtered := make([]*domain.Booking, 0, len(all))
	found := false
	for _, b := range all {
		if b.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, b)
	}
	if !found {
		return ErrBookingNotFound
	}

	return r.save(ctx, filtered)
}

func (r *Repository) load(ctx context.Context) ([]*domain.Booking, error) {
	raw, err := r.store.Get(ctx, bookingsKey)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return []*domain.Booking{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load - %v", ErrStorage, err)
	}

	var stored []storedBooking
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("%w: load - %v", ErrDecode, err)
	}

	result := make([]*domain.Booking, 0, len(stored))
	for _, sb := range stored {
		b, err := sb.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: load - booking id=%s: %v", ErrDecode, sb.ID, err)
		}
		result = append(result, b)
	}
	return result, nil
}

func (r *Repository) save(ctx context.Context, all []*domain.Booking) error {
	stored := make([]storedBooking, 0, len(all))
	for _, b := range all {
		stored = append(stored, fromDomain(b))
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("%w: save - %v", ErrEncode, err)
	}

	if err := r.store.Set(ctx, bookingsKey, raw); err != nil {
		return fmt.Errorf("%w: save - %v", ErrStorage, err)
	}
	return nil
}

func (sb *storedBooking) toDomain() (*domain.Booking, error) {
	date, err := time.Parse(domain.DateFormat, sb.Date)
	if err != nil {
		return nil, err
	}
	createdAt, err := time.Parse(time.RFC3339, sb.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &domain.Booking{
		ID:             sb.ID,
		RequesterID:    sb.RequesterID,
		RequesterEmail: sb.RequesterEmail,
		RequesterName:  sb.RequesterName,
		SubjectName:    sb.SubjectName,
		Location:       sb.Location,
		Date:           date,
		TimeSlot:       sb.TimeSlot,
		Notes:          sb.Notes,
		Status:         domain.BookingStatus(sb.Status),
		CreatedAt:      createdAt,
	}, nil
}

func fromDomain(b *domain.Booking) storedBooking {
	return storedBooking{
		ID:             b.ID,
		RequesterID:    b.RequesterID,
		RequesterEmail: b.RequesterEmail,
		RequesterName:  b.RequesterName,
		SubjectName:    b.SubjectName,
		Location:       b.Location,
		Date:           b.Date.Format(domain.DateFormat),
		TimeSlot:       b.TimeSlot,
		Notes:          b.Notes,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt.UTC().Format(time.RFC3339),
	}
}
