package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/booking-service/pkg/ptr"
)

var (
	testDate   = time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	testLabels = []string{"7:00 AM", "7:30 AM", "8:00 AM", "8:30 AM"}
)

func advanceToConfirmation(t *testing.T) *State {
	t.Helper()

	s := NewState()
	require.NoError(t, s.SelectSlot(testDate, "8:00 AM", testLabels, true))
	require.NoError(t, s.EnterDetails("Rose Lang", "Willow Creek, room 204", ptr.Ptr("prefers mornings")))
	return s
}

func TestState_HappyPath(t *testing.T) {
	s := NewState()
	assert.Equal(t, StepCalendar, s.Step)

	require.NoError(t, s.SelectSlot(testDate, "8:00 AM", testLabels, true))
	assert.Equal(t, StepDetails, s.Step)
	assert.Equal(t, "8:00 AM", s.TimeSlot)

	require.NoError(t, s.EnterDetails("Rose Lang", "Willow Creek", nil))
	assert.Equal(t, StepConfirmation, s.Step)
	assert.True(t, s.ReadyToSubmit())

	require.NoError(t, s.MarkSubmitted())
	assert.Equal(t, StepSubmitted, s.Step)
}

func TestState_SelectSlot_Validation(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		selectable bool
		wantErr    error
	}{
		{"date outside window", "8:00 AM", false, ErrDateNotSelectable},
		{"label not in schedule", "6:00 AM", true, ErrInvalidTimeSlot},
		{"label format mismatch", "08:00", true, ErrInvalidTimeSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			err := s.SelectSlot(testDate, tt.label, testLabels, tt.selectable)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, StepCalendar, s.Step, "failed selection must not advance")
		})
	}
}

func TestState_EnterDetails_Validation(t *testing.T) {
	s := NewState()
	require.NoError(t, s.SelectSlot(testDate, "8:00 AM", testLabels, true))

	assert.ErrorIs(t, s.EnterDetails("  ", "Willow Creek", nil), ErrMissingSubjectName)
	assert.ErrorIs(t, s.EnterDetails("Rose Lang", "", nil), ErrMissingLocation)
	assert.Equal(t, StepDetails, s.Step)
}

func TestState_Back_PreservesValues(t *testing.T) {
	s := advanceToConfirmation(t)

	require.NoError(t, s.Back())
	assert.Equal(t, StepDetails, s.Step)
	assert.Equal(t, "Rose Lang", s.SubjectName)
	assert.Equal(t, "Willow Creek, room 204", s.Location)

	require.NoError(t, s.Back())
	assert.Equal(t, StepCalendar, s.Step)
	assert.Equal(t, "8:00 AM", s.TimeSlot)
	assert.Equal(t, testDate, s.Date)
}

func TestState_Back_FromEdgesFails(t *testing.T) {
	s := NewState()
	assert.ErrorIs(t, s.Back(), ErrWrongStep)

	s = advanceToConfirmation(t)
	require.NoError(t, s.MarkSubmitted())
	assert.ErrorIs(t, s.Back(), ErrWrongStep)
}

func TestState_Reset(t *testing.T) {
	s := advanceToConfirmation(t)
	s.Reset()

	assert.Equal(t, StepCalendar, s.Step)
	assert.True(t, s.Date.IsZero())
	assert.Empty(t, s.TimeSlot)
	assert.Empty(t, s.SubjectName)
	assert.Empty(t, s.Location)
	assert.Nil(t, s.Notes)
}

func TestState_ReturnToCalendar_KeepsDetails(t *testing.T) {
	s := advanceToConfirmation(t)

	// Конфликт на отправке: слот сброшен, данные остались
	s.ReturnToCalendar()
	assert.Equal(t, StepCalendar, s.Step)
	assert.Empty(t, s.TimeSlot)
	assert.Equal(t, "Rose Lang", s.SubjectName)
	assert.Equal(t, "Willow Creek, room 204", s.Location)
}

func TestState_WrongStepTransitions(t *testing.T) {
	s := NewState()

	assert.ErrorIs(t, s.EnterDetails("Rose", "Willow Creek", nil), ErrWrongStep)
	assert.ErrorIs(t, s.MarkSubmitted(), ErrWrongStep)
}

func TestSessions_Lifecycle(t *testing.T) {
	sessions := NewSessions(time.Hour)

	id, state := sessions.Start(42)
	require.NotEmpty(t, id)
	assert.Equal(t, StepCalendar, state.Step)
	assert.Equal(t, 1, sessions.Active())

	got, err := sessions.Get(id, 42)
	require.NoError(t, err)
	assert.Same(t, state, got)

	sessions.Delete(id)
	_, err = sessions.Get(id, 42)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, sessions.Active())
}

func TestSessions_OwnerIsolation(t *testing.T) {
	sessions := NewSessions(time.Hour)

	id, _ := sessions.Start(42)

	_, err := sessions.Get(id, 7)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessions_Expiry(t *testing.T) {
	sessions := NewSessions(30 * time.Minute)

	current := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	sessions.now = func() time.Time { return current }

	id, _ := sessions.Start(42)

	// Обращение продлевает TTL
	current = current.Add(20 * time.Minute)
	_, err := sessions.Get(id, 42)
	require.NoError(t, err)

	current = current.Add(29 * time.Minute)
	_, err = sessions.Get(id, 42)
	require.NoError(t, err)

	// Без обращений сессия истекает
	current = current.Add(31 * time.Minute)
	_, err = sessions.Get(id, 42)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, sessions.Active())
}
