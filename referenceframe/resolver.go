package referenceframe

import (
	"time"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/DynoRobotics/robot-localization/spatialmath"
)

// Diagnostic site identifiers used with the resolver's limiter.
const (
	siteStaleFallback = "resolver.stale-fallback"
	siteUnavailable   = "resolver.unavailable"
)

// A Resolver produces the best available transform between two frames at a
// requested time, falling back to the latest known transform when the store
// has nothing near enough to that time. Fallbacks and failures are reported
// through the logger, rate limited per site by the limiter.
type Resolver struct {
	store   TransformStore
	limiter *DiagnosticLimiter
	logger  golog.Logger
}

// NewResolver returns a Resolver over the given store with a limiter using
// DefaultDiagnosticInterval and the wall clock.
func NewResolver(store TransformStore, logger golog.Logger) (*Resolver, error) {
	return NewResolverWithLimiter(store, NewDiagnosticLimiter(DefaultDiagnosticInterval, nil), logger)
}

// NewResolverWithLimiter returns a Resolver over the given store using the
// given limiter for its diagnostics.
func NewResolverWithLimiter(store TransformStore, limiter *DiagnosticLimiter, logger golog.Logger) (*Resolver, error) {
	if store == nil {
		return nil, ErrNilTransformStore
	}
	if limiter == nil {
		limiter = NewDiagnosticLimiter(DefaultDiagnosticInterval, nil)
	}
	return &Resolver{store: store, limiter: limiter, logger: logger}, nil
}

// Transform is TransformWithTolerance with a zero tolerance, for callers with
// no tolerance preference.
func (r *Resolver) Transform(targetFrame, sourceFrame string, atTime time.Time, silent bool) (spatialmath.Pose, error) {
	return r.TransformWithTolerance(targetFrame, sourceFrame, atTime, 0, silent)
}

// TransformWithTolerance returns the pose of sourceFrame expressed in
// targetFrame at the given time, searching the store up to tolerance away from
// that time.
//
// A frame is trivially related to itself, so identical frames resolve to the
// zero pose even over an empty store (e.g. for replayed or partial data where
// no live source publishes that relation). When the store cannot relate the
// frames near atTime, the latest available transform is substituted and a rate
// limited warning is logged, since upstream publication can lag or gap and a
// stale transform is preferable to a hard failure. If no transform is
// available at all, an error is returned; the caller decides whether to retry
// on a later cycle.
//
// The silent flag suppresses the diagnostics without changing the result.
func (r *Resolver) TransformWithTolerance(
	targetFrame, sourceFrame string,
	atTime time.Time,
	tolerance time.Duration,
	silent bool,
) (spatialmath.Pose, error) {
	if targetFrame == sourceFrame {
		return spatialmath.NewZeroPose(), nil
	}

	if r.store.CanTransform(targetFrame, sourceFrame, atTime, tolerance) {
		if pose, err := r.storeTransform(targetFrame, sourceFrame, atTime, tolerance); err == nil {
			return pose, nil
		}
		// fall through to the latest-available lookup
	}

	// whatever the store has may be too far from atTime; substitute the latest
	// entry and warn
	if r.store.CanTransform(targetFrame, sourceFrame, LatestTime, tolerance) {
		if pose, err := r.storeTransform(targetFrame, sourceFrame, LatestTime, tolerance); err == nil {
			if !silent && r.limiter.Allow(siteStaleFallback) {
				r.logger.Warnw("transform was unavailable for the time requested, using latest instead",
					"from", sourceFrame, "to", targetFrame, "requested", atTime)
			}
			return pose, nil
		}
	}

	if !silent && r.limiter.Allow(siteUnavailable) {
		r.logger.Warnw("could not find a transform", "from", sourceFrame, "to", targetFrame)
	}
	return nil, NewTransformUnavailableError(targetFrame, sourceFrame)
}

// storeTransform queries the store, converting any panic or nil result into an
// error so that nothing escapes the resolver's error return.
func (r *Resolver) storeTransform(
	targetFrame, sourceFrame string,
	atTime time.Time,
	tolerance time.Duration,
) (pose spatialmath.Pose, err error) {
	defer func() {
		if reason := recover(); reason != nil {
			pose = nil
			err = errors.Errorf("transform store panicked: %v", reason)
		}
	}()
	pose, err = r.store.Transform(targetFrame, sourceFrame, atTime, tolerance)
	if err == nil && pose == nil {
		err = errors.New("transform store returned a nil pose")
	}
	return pose, err
}
