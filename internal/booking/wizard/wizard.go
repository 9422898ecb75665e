// Package wizard реализует пошаговый сценарий бронирования:
// calendar -> details -> confirmation -> submitted.
//
// Reducer чистый: State меняется только через переходы ниже, вся проверка
// против расписания передается параметрами. Промежуточное состояние живет
// только в памяти процесса (см. Sessions) - брошенный wizard не оставляет
// следов в хранилище.
package wizard

import (
	"strings"
	"time"
)

// Step шаг wizard
type Step string

const (
	StepCalendar     Step = "calendar"     // выбор даты и слота
	StepDetails      Step = "details"      // ввод данных о подопечном
	StepConfirmation Step = "confirmation" // просмотр перед отправкой
	StepSubmitted    Step = "submitted"    // бронирование создано
)

// State состояние одной сессии wizard. Введенные значения сохраняются при
// навигации назад, чтобы пользователь не вводил их заново.
type State struct {
	Step        Step
	Date        time.Time
	TimeSlot    string
	SubjectName string
	Location    string
	Notes       *string
}

// NewState создает состояние на первом шаге
func NewState() *State {
	return &State{Step: StepCalendar}
}

// SelectSlot фиксирует дату и слот и переводит wizard на шаг details.
// Допустим с шагов calendar и details (повторный выбор слота).
func (s *State) SelectSlot(date time.Time, label string, generated []string, selectable bool) error {
	if s.Step != StepCalendar && s.Step != StepDetails {
		return ErrWrongStep
	}
	if !selectable {
		return ErrDateNotSelectable
	}
	if !containsLabel(generated, label) {
		return ErrInvalidTimeSlot
	}

	s.Date = date
	s.TimeSlot = label
	s.Step = StepDetails
	return nil
}

// EnterDetails фиксирует данные о подопечном и переводит wizard на шаг
// confirmation
func (s *State) EnterDetails(subjectName, location string, notes *string) error {
	if s.Step != StepDetails && s.Step != StepConfirmation {
		return ErrWrongStep
	}
	if strings.TrimSpace(subjectName) == "" {
		return ErrMissingSubjectName
	}
	if strings.TrimSpace(location) == "" {
		return ErrMissingLocation
	}

	s.SubjectName = subjectName
	s.Location = location
	s.Notes = notes
	s.Step = StepConfirmation
	return nil
}

// Back возвращает wizard на предыдущий шаг. Введенные значения остаются в
// состоянии. С первого и финального шага назад идти некуда.
func (s *State) Back() error {
	switch s.Step {
	case StepDetails:
		s.Step = StepCalendar
	case StepConfirmation:
		s.Step = StepDetails
	default:
		return ErrWrongStep
	}
	return nil
}

// Reset сбрасывает сессию к пустому состоянию на первом шаге
func (s *State) Reset() {
	*s = State{Step: StepCalendar}
}

// MarkSubmitted переводит wizard в финальный шаг после успешного создания
// бронирования
func (s *State) MarkSubmitted() error {
	if s.Step != StepConfirmation {
		return ErrWrongStep
	}
	s.Step = StepSubmitted
	return nil
}

// ReturnToCalendar возвращает wizard к выбору слота после конфликта на
// отправке. Слот сбрасывается, данные о подопечном остаются.
func (s *State) ReturnToCalendar() {
	s.TimeSlot = ""
	s.Step = StepCalendar
}

// ReadyToSubmit сообщает, можно ли отправлять бронирование
func (s *State) ReadyToSubmit() bool {
	return s.Step == StepConfirmation
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
