// Package lock serializes writes that target the same professional and
// date, so a check-then-write sequence cannot interleave with another.
package lock

import (
	"context"
	"fmt"
)

// Locker acquires an exclusive lock on key. The returned function
// releases it and is safe to call more than once.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// ProfessionalDayKey names the lock guarding a professional's agenda on one date.
func ProfessionalDayKey(professionalID uint, date string) string {
	return fmt.Sprintf("agenda:%d:%s", professionalID, date)
}
