package referenceframe

import (
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/DynoRobotics/robot-localization/spatialmath"
)

// framePair is a directed frame relationship: the pose of source expressed in target.
type framePair struct {
	target string
	source string
}

type timedPose struct {
	at   time.Time
	pose spatialmath.Pose
}

// MemoryStore is an in-memory TransformStore holding a time-sorted history of
// transforms per directed frame pair. If only the reverse direction of a pair
// has been recorded, lookups return the inverse of the recorded pose.
//
// Lookups return the entry nearest the requested time within the tolerance
// window; no interpolation is performed. It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	history map[framePair][]timedPose
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{history: map[framePair][]timedPose{}}
}

// Record adds the pose of sourceFrame expressed in targetFrame at the given
// time. Out of order records are inserted at the right place in the history.
func (ms *MemoryStore) Record(targetFrame, sourceFrame string, at time.Time, pose spatialmath.Pose) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	pair := framePair{targetFrame, sourceFrame}
	entries := ms.history[pair]
	idx := sort.Search(len(entries), func(i int) bool { return entries[i].at.After(at) })
	entries = append(entries, timedPose{})
	copy(entries[idx+1:], entries[idx:])
	entries[idx] = timedPose{at, pose}
	ms.history[pair] = entries
}

// CanTransform returns whether the two frames can be related at the given time.
func (ms *MemoryStore) CanTransform(targetFrame, sourceFrame string, atTime time.Time, tolerance time.Duration) bool {
	_, err := ms.Transform(targetFrame, sourceFrame, atTime, tolerance)
	return err == nil
}

// Transform returns the pose of sourceFrame expressed in targetFrame at the
// given time. Passing LatestTime returns the most recent entry for the pair.
func (ms *MemoryStore) Transform(
	targetFrame, sourceFrame string,
	atTime time.Time,
	tolerance time.Duration,
) (spatialmath.Pose, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	entries, inverted := ms.lookupPair(targetFrame, sourceFrame)
	if len(entries) == 0 {
		return nil, NewUnknownFramePairError(targetFrame, sourceFrame)
	}

	var pose spatialmath.Pose
	if atTime.Equal(LatestTime) {
		pose = entries[len(entries)-1].pose
	} else {
		nearest, offset := nearestEntry(entries, atTime)
		if offset > tolerance {
			return nil, errors.Errorf(
				"no transform from %q to %q within %v of %v (nearest is %v away)",
				sourceFrame, targetFrame, tolerance, atTime, offset)
		}
		pose = nearest.pose
	}

	if inverted {
		pose = spatialmath.PoseInverse(pose)
	}
	return pose, nil
}

// lookupPair returns the history for the pair, falling back to the reverse
// direction. Callers must hold ms.mu.
func (ms *MemoryStore) lookupPair(targetFrame, sourceFrame string) ([]timedPose, bool) {
	if entries, ok := ms.history[framePair{targetFrame, sourceFrame}]; ok {
		return entries, false
	}
	entries, ok := ms.history[framePair{sourceFrame, targetFrame}]
	return entries, ok
}

// nearestEntry returns the entry closest in time to atTime and the absolute
// offset between them. entries must be non-empty and sorted by time.
func nearestEntry(entries []timedPose, atTime time.Time) (timedPose, time.Duration) {
	idx := sort.Search(len(entries), func(i int) bool { return !entries[i].at.Before(atTime) })
	if idx == len(entries) {
		idx--
	} else if idx > 0 {
		if atTime.Sub(entries[idx-1].at) < entries[idx].at.Sub(atTime) {
			idx--
		}
	}
	offset := atTime.Sub(entries[idx].at)
	if offset < 0 {
		offset = -offset
	}
	return entries[idx], offset
}
