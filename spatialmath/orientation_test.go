package spatialmath

import (
	"math"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

// represent a 45 degree rotation around the x axis in all the representations
var (
	th    = math.Pi / 4.
	q45x  = quat.Number{Real: math.Cos(th / 2.), Imag: math.Sin(th / 2.), Jmag: 0, Kmag: 0} // in quaternion representation
	aa45x = &R4AA{th, 1., 0., 0.}                                                           // in axis-angle representation
	ea45x = &EulerAngles{Roll: th, Pitch: 0, Yaw: 0}                                        // in euler angle representation
)

func TestZeroOrientation(t *testing.T) {
	zero := NewZeroOrientation()
	test.That(t, zero.Quaternion(), test.ShouldResemble, quat.Number{Real: 1, Imag: 0, Jmag: 0, Kmag: 0})
	ea := zero.EulerAngles()
	test.That(t, ea.Roll, test.ShouldAlmostEqual, 0)
	test.That(t, ea.Pitch, test.ShouldAlmostEqual, 0)
	test.That(t, ea.Yaw, test.ShouldAlmostEqual, 0)
	test.That(t, zero.AxisAngles().Theta, test.ShouldEqual, 0)
	test.That(t, zero.RotationMatrix().At(0, 0), test.ShouldEqual, 1)
}

func TestQuaternions(t *testing.T) {
	qq45x := quaternion(q45x)
	test.That(t, qq45x.Quaternion().Real, test.ShouldAlmostEqual, q45x.Real)
	test.That(t, qq45x.Quaternion().Imag, test.ShouldAlmostEqual, q45x.Imag)
	test.That(t, qq45x.AxisAngles().Theta, test.ShouldAlmostEqual, aa45x.Theta)
	test.That(t, qq45x.AxisAngles().RX, test.ShouldAlmostEqual, aa45x.RX)
	test.That(t, qq45x.AxisAngles().RY, test.ShouldAlmostEqual, aa45x.RY)
	test.That(t, qq45x.AxisAngles().RZ, test.ShouldAlmostEqual, aa45x.RZ)
	test.That(t, qq45x.EulerAngles().Roll, test.ShouldAlmostEqual, ea45x.Roll)
	test.That(t, qq45x.EulerAngles().Pitch, test.ShouldAlmostEqual, ea45x.Pitch)
	test.That(t, qq45x.EulerAngles().Yaw, test.ShouldAlmostEqual, ea45x.Yaw)
}

func TestEulerAnglesRepresentations(t *testing.T) {
	q := ea45x.Quaternion()
	test.That(t, q.Real, test.ShouldAlmostEqual, q45x.Real)
	test.That(t, q.Imag, test.ShouldAlmostEqual, q45x.Imag)
	test.That(t, q.Jmag, test.ShouldAlmostEqual, q45x.Jmag)
	test.That(t, q.Kmag, test.ShouldAlmostEqual, q45x.Kmag)
	test.That(t, ea45x.AxisAngles().Theta, test.ShouldAlmostEqual, th)
	test.That(t, ea45x.AxisAngles().RX, test.ShouldAlmostEqual, 1)
}

func TestAxisAngleRepresentations(t *testing.T) {
	q := aa45x.Quaternion()
	test.That(t, q.Real, test.ShouldAlmostEqual, q45x.Real)
	test.That(t, q.Imag, test.ShouldAlmostEqual, q45x.Imag)
	ea := aa45x.EulerAngles()
	test.That(t, ea.Roll, test.ShouldAlmostEqual, th)
	test.That(t, ea.Pitch, test.ShouldAlmostEqual, 0)
	test.That(t, ea.Yaw, test.ShouldAlmostEqual, 0)
}

func TestOrientationBetween(t *testing.T) {
	ea90z := &EulerAngles{Yaw: math.Pi / 2}
	between := OrientationBetween(ea45x, ea45x)
	test.That(t, OrientationAlmostEqual(between, NewZeroOrientation()), test.ShouldBeTrue)
	between = OrientationBetween(NewZeroOrientation(), ea90z)
	test.That(t, OrientationAlmostEqual(between, ea90z), test.ShouldBeTrue)
}

func TestNormalize(t *testing.T) {
	q := Normalize(quat.Number{Real: 0, Imag: 2, Jmag: 0, Kmag: 0})
	test.That(t, q, test.ShouldResemble, quat.Number{Real: 0, Imag: 1, Jmag: 0, Kmag: 0})
	q = Normalize(quat.Number{})
	test.That(t, q, test.ShouldResemble, quat.Number{Real: 1})
}

func TestFlip(t *testing.T) {
	f := Flip(q45x)
	test.That(t, f.Real, test.ShouldAlmostEqual, -q45x.Real)
	test.That(t, f.Imag, test.ShouldAlmostEqual, -q45x.Imag)
	// a flipped quaternion represents the same rotation
	ff := quaternion(f)
	test.That(t, OrientationAlmostEqual(&ff, ea45x), test.ShouldBeFalse) // double cover, not float equality
	test.That(t, rotationsAlmostEqual(&ff, ea45x), test.ShouldBeTrue)
}

// rotationsAlmostEqual compares two orientations by their rotation matrices,
// which are insensitive to quaternion double cover.
func rotationsAlmostEqual(o1, o2 Orientation) bool {
	m1, m2 := o1.RotationMatrix(), o2.RotationMatrix()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if math.Abs(m1.At(r, c)-m2.At(r, c)) > 1e-8 {
				return false
			}
		}
	}
	return true
}
