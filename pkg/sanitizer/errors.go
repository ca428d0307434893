package sanitizer

import "errors"

// ErrUnknownMode is returned by ParseMode for unrecognised mode names.
var ErrUnknownMode = errors.New("unknown disallowed tags mode")
