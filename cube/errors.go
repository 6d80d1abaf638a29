package cube

import "errors"

var (
	// ErrEmptyPoblQueue indicates Pop was called on an empty PoblQueue.
	ErrEmptyPoblQueue = errors.New("cube: proof-obligation queue is empty")
)
