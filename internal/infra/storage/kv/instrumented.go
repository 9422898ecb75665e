package kv

import (
	"context"
	"errors"
)

// Recorder учитывает результат операции хранилища в метриках
type Recorder interface {
	RecordStorageOp(op, result string)
}

// InstrumentedStore оборачивает Store и считает операции по результату
type InstrumentedStore struct {
	inner    Store
	recorder Recorder
}

// WrapWithMetrics оборачивает store учетом операций
func WrapWithMetrics(inner Store, recorder Recorder) *InstrumentedStore {
	return &InstrumentedStore{inner: inner, recorder: recorder}
}

// Get implements Store.
func (s *InstrumentedStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.inner.Get(ctx, key)
	s.record("get", err)
	return value, err
}

// Set implements Store.
func (s *InstrumentedStore) Set(ctx context.Context, key string, value []byte) error {
	err := s.inner.Set(ctx, key, value)
	s.record("set", err)
	return err
}

// Delete implements Store.
func (s *InstrumentedStore) Delete(ctx context.Context, key string) error {
	err := s.inner.Delete(ctx, key)
	s.record("delete", err)
	return err
}

// record не считает ErrKeyNotFound ошибкой: для bookings и schedule_config
// отсутствие ключа - обычное состояние до первой записи
func (s *InstrumentedStore) record(op string, err error) {
	result := "ok"
	if err != nil && !errors.Is(err, ErrKeyNotFound) {
		result = "error"
	}
	s.recorder.RecordStorageOp(op, result)
}
