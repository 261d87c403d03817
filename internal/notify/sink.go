package notify

import "context"

// Notification is a single push message.
type Notification struct {
	Title    string
	Body     string
	Priority string
	Tags     string
}

// Sink delivers notifications.
type Sink interface {
	Notify(ctx context.Context, n Notification) error
}

// NopSink discards every notification. It is used when notifications are disabled.
type NopSink struct{}

// Notify does nothing.
func (NopSink) Notify(context.Context, Notification) error { return nil }

// TimeUpTitle is the title of the notification sent when a countdown reaches zero.
const TimeUpTitle = "Time's Up!"

// Test notification contents.
const (
	TestTitle = "Test Notification"
	TestBody  = "Test notification from your Productivy Clock"
)

// SendTest pushes the fixed test notification through sink.
func SendTest(ctx context.Context, sink Sink, priority, tags string) error {
	return sink.Notify(ctx, Notification{
		Title:    TestTitle,
		Body:     TestBody,
		Priority: priority,
		Tags:     tags,
	})
}
