// Package referenceframe resolves spatial relationships between named
// coordinate frames using a time-indexed store of transforms.
package referenceframe

import (
	"time"

	"github.com/DynoRobotics/robot-localization/spatialmath"
)

// World is the string "world", but made into an exported constant.
const World = "world"

// LatestTime is the sentinel time meaning "the most recent transform
// available", however far that is from now.
var LatestTime = time.Time{}

// A TransformStore holds a history of transforms between pairs of named
// frames, keyed by time. It is read-only from the resolver's perspective and
// must be safe for concurrent reads.
//
// Passing LatestTime as atTime asks for the most recent transform available
// for the pair. The tolerance bounds how far from atTime the store may search;
// how tolerance interacts with any interpolation the store performs internally
// is the store's own contract.
type TransformStore interface {
	// CanTransform returns whether the two frames can be related at the given time.
	CanTransform(targetFrame, sourceFrame string, atTime time.Time, tolerance time.Duration) bool

	// Transform returns the pose of sourceFrame expressed in targetFrame at the
	// given time, or an error if the frames cannot be related.
	Transform(targetFrame, sourceFrame string, atTime time.Time, tolerance time.Duration) (spatialmath.Pose, error)
}
