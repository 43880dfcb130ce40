package client

import "errors"

var ErrNilAdapter = errors.New("server adapter is nil")
