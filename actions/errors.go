package actions

import (
	"errors"
	"fmt"
)

var ErrUnrecognizedOperation = errors.New("unrecognized operation")

// InternalFault reports an unexpected failure inside an operation.
type InternalFault struct {
	Op          string
	Description string
}

func (f *InternalFault) Error() string {
	return fmt.Sprintf("%s: internal fault: %s", f.Op, f.Description)
}

func catchFault(op string, errp *error) {
	if p := recover(); p != nil {
		*errp = &InternalFault{
			Op:          op,
			Description: fmt.Sprint(p),
		}
	}
}
