package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.repository: booking not found")

	// ErrStorage возвращается при ошибках key-value хранилища
	ErrStorage = errors.New("bookings.repository: storage error")

	// ErrEncode возвращается при ошибке сериализации коллекции
	ErrEncode = errors.New("bookings.repository: failed to encode bookings")

	// ErrDecode возвращается при ошибке десериализации коллекции
	ErrDecode = errors.New("bookings.repository: failed to decode bookings")
)
