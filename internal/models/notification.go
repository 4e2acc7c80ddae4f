package models

// Notification kinds.
const (
	NoticeInfo    = "info"
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Notification is a transient status message scoped to one form or list
// context. It is cleared on the next action in that context.
type Notification struct {
	Message string
	Kind    string
}

// IsZero reports whether there is nothing to show.
func (n Notification) IsZero() bool { return n.Message == "" }

// Info builds an info notification.
func Info(msg string) Notification { return Notification{Message: msg, Kind: NoticeInfo} }

// Success builds a success notification.
func Success(msg string) Notification { return Notification{Message: msg, Kind: NoticeSuccess} }

// Errorf builds an error notification.
func Errorf(msg string) Notification { return Notification{Message: msg, Kind: NoticeError} }
