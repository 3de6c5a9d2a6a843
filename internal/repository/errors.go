package repository

import "errors"

// ErrNotFound is returned by Get operations when no row matches. It keeps
// database/sql details out of the service layer.
var ErrNotFound = errors.New("record not found")
