package medassist

import "time"

// Turn is one message in the conversation: a role plus text content.
// Order is significant; turns are only ever appended.
type Turn struct {
	Role      Role
	Content   string
	Timestamp time.Time
}
