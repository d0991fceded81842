package geometry

// Matrix4 is a row-major 4x4 transformation matrix
type Matrix4 [16]float64

// Identity returns the identity matrix
func Identity() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a translation matrix
func Translate(x, y, z float64) Matrix4 {
	m := Identity()
	m[3] = x
	m[7] = y
	m[11] = z
	return m
}

// Scale returns a scaling matrix
func Scale(x, y, z float64) Matrix4 {
	m := Identity()
	m[0] = x
	m[5] = y
	m[10] = z
	return m
}

// Mul returns the matrix product m * other
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var result Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * other[k*4+col]
			}
			result[row*4+col] = sum
		}
	}
	return result
}

// TransformPoint applies the full transform to a point (w = 1)
func (m Matrix4) TransformPoint(v Vector3) Vector3 {
	return Vector3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3],
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7],
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11],
	}
}

// TransformDirection applies only the upper 3x3 part of the transform,
// which is what normals and other directions need (w = 0)
func (m Matrix4) TransformDirection(v Vector3) Vector3 {
	return Vector3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}
