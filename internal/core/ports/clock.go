package ports

import "time"

// Clock supplies the current time for every timestamp the core writes.
type Clock interface {
	Now() time.Time
}
