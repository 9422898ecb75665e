package notifications

import "context"

// LogSink пишет уведомления в лог вместо отправки. Используется в локальной
// разработке и тестовых стендах без брокера.
type LogSink struct {
	logger Logger
}

// NewLogSink создает лог-синк
func NewLogSink(logger Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Send implements Sink.
func (s *LogSink) Send(_ context.Context, msg Message) error {
	s.logger.Info("notification (log sink): to=%s subject=%q", msg.To, msg.Subject)
	return nil
}
