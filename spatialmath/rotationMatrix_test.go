package spatialmath

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestNewRotationMatrix(t *testing.T) {
	_, err := NewRotationMatrix([]float64{1, 2, 3})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "exactly 9")

	rm, err := NewRotationMatrix([]float64{
		0, -1, 0,
		1, 0, 0,
		0, 0, 1,
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rm.At(0, 1), test.ShouldEqual, -1)
	test.That(t, rm.Row(1), test.ShouldResemble, [3]float64{1, 0, 0})

	// 90 degrees about z
	ea := rm.EulerAngles()
	test.That(t, ea.Yaw, test.ShouldAlmostEqual, math.Pi/2)
}

func TestRotationMatrixQuaternionRoundTrip(t *testing.T) {
	for _, o := range []Orientation{
		NewZeroOrientation(),
		ea45x,
		&EulerAngles{Roll: -2.5, Pitch: 0.7, Yaw: 3.0},
		&EulerAngles{Roll: 0.1, Pitch: -1.2, Yaw: -0.4},
		&R4AA{math.Pi, 0, 0, 1},
	} {
		rm := o.RotationMatrix()
		q := quaternion(rm.Quaternion())
		test.That(t, rotationsAlmostEqual(&q, o), test.ShouldBeTrue)
	}
}
