package linalg

import "errors"

// ErrBadShape is returned by NewMat3 and NewMat4 when the nested slice
// literal does not have exactly N rows of N elements.
var ErrBadShape = errors.New("linalg: bad matrix shape")
