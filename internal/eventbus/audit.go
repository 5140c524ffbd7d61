package eventbus

import (
	"go.uber.org/zap"
)

// AuditTypes are the event types the audit subscriber records
var AuditTypes = []EventType{
	EventRowsLoaded,
	EventRowDeleted,
	EventStatusChanged,
	EventBulkActionCompleted,
	EventNotificationPosted,
	EventError,
}

// SubscribeAudit logs every domain event with structured fields.
// The returned function removes all audit subscriptions.
func SubscribeAudit(b EventBus, logger *zap.Logger) func() {
	log := logger.Named("audit")
	var unsubs []func()
	for _, t := range AuditTypes {
		unsubs = append(unsubs, b.Subscribe(t, func(e DomainEvent) {
			log.Info(string(e.Type()), auditFields(e)...)
		}))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

func auditFields(e DomainEvent) []zap.Field {
	switch ev := e.(type) {
	case RowsLoadedEvent:
		return []zap.Field{zap.String("resource", ev.Resource), zap.Int("count", ev.Count)}
	case RowDeletedEvent:
		return []zap.Field{zap.String("resource", ev.Resource), zap.String("id", ev.ID)}
	case StatusChangedEvent:
		return []zap.Field{
			zap.String("resource", ev.Resource),
			zap.String("id", ev.ID),
			zap.String("status", ev.Status),
			zap.Bool("reverted", ev.Reverted),
		}
	case BulkActionCompletedEvent:
		return []zap.Field{
			zap.String("resource", ev.Resource),
			zap.String("action", ev.Action),
			zap.Strings("ids", ev.IDs),
			zap.Bool("success", ev.Success),
		}
	case NotificationPostedEvent:
		return []zap.Field{
			zap.String("level", string(ev.Notification.Level)),
			zap.String("text", ev.Notification.Text),
		}
	case ErrorEvent:
		return []zap.Field{zap.String("message", ev.Message), zap.Error(ev.Err)}
	}
	return nil
}
