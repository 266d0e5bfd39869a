package referenceframe

import "github.com/pkg/errors"

// ErrNilTransformStore is returned when a resolver is constructed without a store.
var ErrNilTransformStore = errors.New("transform store is nil")

// NewTransformUnavailableError returns an error indicating that neither an
// exact-time nor a latest-available transform could be found for a frame pair.
func NewTransformUnavailableError(targetFrame, sourceFrame string) error {
	return errors.Errorf("could not transform from %q to %q", sourceFrame, targetFrame)
}

// NewUnknownFramePairError returns an error indicating a store holds no
// history at all for a frame pair.
func NewUnknownFramePairError(targetFrame, sourceFrame string) error {
	return errors.Errorf("no transform history from %q to %q", sourceFrame, targetFrame)
}
