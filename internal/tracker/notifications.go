package tracker

// notify stamps the notification, inserts it at the head of the log (most
// recent first) and hands it to the sink for display.
func (t *Tracker) notify(n Notification) {
	n.ID = t.newID()
	n.Read = false
	n.CreatedAt = t.now()
	t.doc.Notifications = append([]Notification{n}, t.doc.Notifications...)
	if t.sink != nil {
		t.sink.Emit(n)
	}
}

// Notify inserts an externally built notification, for collaborators outside
// the core (e.g. deadline scanners in the rendering layer).
func (t *Tracker) Notify(n Notification) {
	t.notify(n)
	t.persist()
}

func (t *Tracker) MarkNotificationRead(id string) error {
	for i := range t.doc.Notifications {
		if t.doc.Notifications[i].ID == id {
			t.doc.Notifications[i].Read = true
			t.persist()
			return nil
		}
	}
	return ErrNotifNotFound
}

func (t *Tracker) MarkAllNotificationsRead() {
	for i := range t.doc.Notifications {
		t.doc.Notifications[i].Read = true
	}
	t.persist()
}

func (t *Tracker) DeleteNotification(id string) error {
	for i := range t.doc.Notifications {
		if t.doc.Notifications[i].ID == id {
			t.doc.Notifications = append(t.doc.Notifications[:i], t.doc.Notifications[i+1:]...)
			t.persist()
			return nil
		}
	}
	return ErrNotifNotFound
}

// UnreadCount counts notifications still marked unread.
func (t *Tracker) UnreadCount() int {
	var n int
	for i := range t.doc.Notifications {
		if !t.doc.Notifications[i].Read {
			n++
		}
	}
	return n
}
