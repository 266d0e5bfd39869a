package referenceframe

import (
	"testing"
	"time"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/DynoRobotics/robot-localization/spatialmath"
)

func TestMemoryStoreLookup(t *testing.T) {
	store := NewMemoryStore()
	p10 := spatialmath.NewPoseFromPoint(r3.Vector{X: 1, Y: 0, Z: 0})
	p20 := spatialmath.NewPoseFromPoint(r3.Vector{X: 2, Y: 0, Z: 0})
	store.Record("odom", "base_link", time.Unix(10, 0), p10)
	store.Record("odom", "base_link", time.Unix(20, 0), p20)

	// nearest entry within tolerance
	pose, err := store.Transform("odom", "base_link", time.Unix(10, 50e6), 100*time.Millisecond)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spatialmath.PoseAlmostEqual(pose, p10), test.ShouldBeTrue)

	// outside tolerance
	_, err = store.Transform("odom", "base_link", time.Unix(12, 0), 100*time.Millisecond)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "within")
	test.That(t, store.CanTransform("odom", "base_link", time.Unix(12, 0), 100*time.Millisecond), test.ShouldBeFalse)

	// latest sentinel ignores how far the requested time is
	pose, err = store.Transform("odom", "base_link", LatestTime, 100*time.Millisecond)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spatialmath.PoseAlmostEqual(pose, p20), test.ShouldBeTrue)

	// unknown pair
	_, err = store.Transform("map", "base_link", time.Unix(10, 0), time.Second)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "no transform history")
}

func TestMemoryStoreInverseDirection(t *testing.T) {
	store := NewMemoryStore()
	p := spatialmath.NewPoseFromPoint(r3.Vector{X: 0, Y: 3, Z: 0})
	store.Record("odom", "base_link", time.Unix(10, 0), p)

	pose, err := store.Transform("base_link", "odom", time.Unix(10, 0), 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spatialmath.PoseAlmostEqual(pose, spatialmath.PoseInverse(p)), test.ShouldBeTrue)
}

func TestMemoryStoreOutOfOrderRecord(t *testing.T) {
	store := NewMemoryStore()
	pEarly := spatialmath.NewPoseFromPoint(r3.Vector{X: 1, Y: 0, Z: 0})
	pLate := spatialmath.NewPoseFromPoint(r3.Vector{X: 2, Y: 0, Z: 0})
	store.Record("odom", "base_link", time.Unix(20, 0), pLate)
	store.Record("odom", "base_link", time.Unix(10, 0), pEarly)

	pose, err := store.Transform("odom", "base_link", LatestTime, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spatialmath.PoseAlmostEqual(pose, pLate), test.ShouldBeTrue)

	pose, err = store.Transform("odom", "base_link", time.Unix(10, 0), 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spatialmath.PoseAlmostEqual(pose, pEarly), test.ShouldBeTrue)
}
