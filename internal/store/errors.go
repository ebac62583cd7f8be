package store

import "errors"

var ErrNilKey = errors.New("nil key")
