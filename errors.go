package logprovider

import "github.com/pkg/errors"

// ErrInvalidArgument reports construction misuse, such as a nil receive callback.
// Returned errors wrap it; match with errors.Is.
var ErrInvalidArgument = errors.New("logprovider: invalid argument")

func invalidArgument(msg string) error {
	return errors.Wrap(ErrInvalidArgument, msg)
}
