package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCourseBlocksFound means the input has no course: line at all.
	ErrNoCourseBlocksFound = errors.New("no course blocks found")
	// ErrNoEvents means a block was scanned but nothing survived.
	ErrNoEvents = errors.New("block produced no events")
	// ErrMissingCourseID means a block has neither a course id nor a name.
	ErrMissingCourseID = errors.New("block has no course id")
)

// DialectUnrecognizedError is reported for a block whose layout matches
// neither dialect.
type DialectUnrecognizedError struct {
	BlockIndex int
}

func (e *DialectUnrecognizedError) Error() string {
	return fmt.Sprintf("block %d: dialect unrecognized", e.BlockIndex)
}
