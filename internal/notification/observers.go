package notification

// NotifierLogger интерфейс для логирования отправленных уведомлений
type NotifierLogger interface {
	Info(format string, v ...interface{})
}

// EmailNotifier заглушка email-канала: пишет уведомление в лог
type EmailNotifier struct {
	logger NotifierLogger
}

// NewEmailNotifier создает email-подписчика
func NewEmailNotifier(logger NotifierLogger) *EmailNotifier {
	return &EmailNotifier{logger: logger}
}

// Notify отправляет email-уведомление
func (n *EmailNotifier) Notify(event Event) error {
	n.logger.Info("Email sent: booking %s is %s (%s)", event.BookingID, event.Status, event.Message)
	return nil
}

// SMSNotifier заглушка SMS-канала: пишет уведомление в лог
type SMSNotifier struct {
	logger NotifierLogger
}

// NewSMSNotifier создает SMS-подписчика
func NewSMSNotifier(logger NotifierLogger) *SMSNotifier {
	return &SMSNotifier{logger: logger}
}

// Notify отправляет SMS-уведомление
func (n *SMSNotifier) Notify(event Event) error {
	n.logger.Info("SMS sent: booking %s is %s (%s)", event.BookingID, event.Status, event.Message)
	return nil
}

// StatusMetricsCollector счётчик событий бронирования по статусам
type StatusMetricsCollector interface {
	IncBookingEvent(status string)
}

// MetricsObserver подписчик, ведущий метрики по статусам бронирований
type MetricsObserver struct {
	collector StatusMetricsCollector
}

// NewMetricsObserver создает подписчика метрик
func NewMetricsObserver(collector StatusMetricsCollector) *MetricsObserver {
	return &MetricsObserver{collector: collector}
}

// Notify учитывает событие в метриках
func (o *MetricsObserver) Notify(event Event) error {
	o.collector.IncBookingEvent(string(event.Status))
	return nil
}
