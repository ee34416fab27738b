package services

type reminderDeps struct {
	rt *RealtimeHub
	ps *PushService
}

var _reminder reminderDeps

func InitReminderDeps(rt *RealtimeHub, ps *PushService) {
	_reminder = reminderDeps{rt: rt, ps: ps}
}

// EmitReminder fans a reminder out to every configured channel. Each channel
// is optional and best-effort; a reminder with nowhere to go is dropped.
func EmitReminder(userID uint, tracker, title, body string) {
	if _reminder.rt != nil {
		_reminder.rt.Broadcast(userID, map[string]any{
			"kind":    "reminder",
			"tracker": tracker,
			"title":   title,
			"body":    body,
		})
	}
	if _reminder.ps != nil {
		_reminder.ps.PushToUser(userID, title, body, map[string]string{
			"tracker": tracker,
		})
	}
}
