package abbegm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/robohouse-delft/abbegm/egmpb"
)

func TestCartesianVecRoundTrip(t *testing.T) {
	v := r3.Vec{X: 100.5, Y: -20, Z: 512}
	assert.Equal(t, v, VecFromCartesian(CartesianFromVec(v)))

	m := egmpb.CartesianFromMM(1, 2, 3)
	assert.Equal(t, m, CartesianFromVec(VecFromCartesian(m)))
}

func TestQuaternionRoundTrip(t *testing.T) {
	q := quat.Number{Real: 0.5, Imag: 0.5, Jmag: -0.5, Kmag: 0.5}
	assert.Equal(t, q, QuatFromQuaternion(QuaternionFromQuat(q)))

	m := egmpb.QuaternionWXYZ(1, 0, 0, 0)
	assert.Equal(t, m, QuaternionFromQuat(QuatFromQuaternion(m)))
}

func TestCartesianSpeedVec(t *testing.T) {
	v := r3.Vec{X: 10, Y: 0, Z: -10}
	speed := CartesianSpeedFromVec(v)
	got, err := VecFromCartesianSpeed(speed)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	_, err = VecFromCartesianSpeed(&egmpb.EgmCartesianSpeed{Value: []float64{1, 2}})
	assert.Error(t, err)
}

func TestPoseParts(t *testing.T) {
	pos := r3.Vec{X: 400, Y: 0, Z: 600}
	orient := quat.Number{Real: 1}

	pose := PoseFromParts(pos, orient)
	gotPos, gotOrient, err := PoseParts(pose)
	require.NoError(t, err)
	assert.Equal(t, pos, gotPos)
	assert.Equal(t, orient, gotOrient)

	_, _, err = PoseParts(&egmpb.EgmPose{Orient: egmpb.QuaternionWXYZ(1, 0, 0, 0)})
	assert.ErrorIs(t, err, ErrPoseMissingPosition)

	_, _, err = PoseParts(&egmpb.EgmPose{Pos: egmpb.CartesianFromMM(0, 0, 0)})
	assert.ErrorIs(t, err, ErrPoseMissingOrientation)
}
