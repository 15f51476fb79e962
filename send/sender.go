// Package send dispatches rendered messages through the native Messages
// application, one recipient at a time.
package send

import "context"

// Sender delivers one rendered message to one phone number over the named
// service. Implementations report failure through the returned error only;
// there is no delivery acknowledgment beyond that.
type Sender interface {
	Send(ctx context.Context, text, number, service string) error
}
