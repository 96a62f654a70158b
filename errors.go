package i18n

import "errors"

// ErrUnsupportedFormat indicates a dictionary file with an extension no
// decoder is registered for.
var ErrUnsupportedFormat = errors.New("i18n: unsupported dictionary format")
