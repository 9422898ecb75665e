package notifications

import (
	"context"
	"time"

	"github.com/careconnect/booking-service/internal/domain"
)

// Dispatcher строит сообщения по событиям жизненного цикла бронирования и
// отдает их в sink. Отправка - fire-and-forget: ошибки логируются и
// считаются в метриках, но никогда не возвращаются вызывающей стороне и не
// откатывают уже закоммиченное состояние.
type Dispatcher struct {
	sink     Sink
	timeout  time.Duration
	logger   Logger
	recorder Recorder // может быть nil, если метрики выключены
}

// NewDispatcher создает диспетчер уведомлений
func NewDispatcher(sink Sink, timeout time.Duration, logger Logger, recorder Recorder) *Dispatcher {
	return &Dispatcher{
		sink:     sink,
		timeout:  timeout,
		logger:   logger,
		recorder: recorder,
	}
}

// BookingCreated отправляет ровно два события: admin-notify на адрес
// администратора и user-confirm заявителю.
func (d *Dispatcher) BookingCreated(ctx context.Context, booking *domain.Booking, adminAddress string) {
	d.dispatch(ctx, KindAdminNotify, buildAdminNotify(booking, adminAddress))
	d.dispatch(ctx, KindUserConfirm, buildUserConfirm(booking))
}

// StatusUpdated отправляет одно событие status-update заявителю
func (d *Dispatcher) StatusUpdated(ctx context.Context, booking *domain.Booking) {
	d.dispatch(ctx, KindStatusUpdate, buildStatusUpdate(booking))
}

// dispatch отправляет сообщение синхронно, но с собственным таймаутом:
// ждем ровно столько, чтобы залогировать успех или неудачу.
func (d *Dispatcher) dispatch(ctx context.Context, kind EventKind, msg Message) {
	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.sink.Send(sendCtx, msg); err != nil {
		d.logger.Error("notifications: %s to %s failed: %v", kind, msg.To, err)
		d.record(kind, "error")
		return
	}

	d.logger.Info("notifications: %s sent to %s", kind, msg.To)
	d.record(kind, "ok")
}

func (d *Dispatcher) record(kind EventKind, result string) {
	if d.recorder != nil {
		d.recorder.RecordNotification(string(kind), result)
	}
}
