package orion

import (
	"errors"
	"fmt"
)

// ErrOutOfMemory is returned by Run if the surface ran out of memory.
var ErrOutOfMemory = errors.New("surface out of memory")

// Handle panics if err is not nil. Use it for failures the process
// can not recover from, like a missing graphics adapter.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(text + ": " + err.Error())
	}
}
