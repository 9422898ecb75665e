package schedule

import "errors"

var (
	// ErrStorage возвращается при ошибках key-value хранилища
	ErrStorage = errors.New("schedule.repository: storage error")

	// ErrEncode возвращается при ошибке сериализации конфигурации
	ErrEncode = errors.New("schedule.repository: failed to encode config")

	// ErrDecode возвращается при ошибке десериализации конфигурации
	ErrDecode = errors.New("schedule.repository: failed to decode config")
)
