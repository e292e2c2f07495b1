package console

import "errors"

var ErrFailedToLoadWatch = errors.New("failed to load watch")
