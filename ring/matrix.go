package ring

// Matrix is a 3x3 matrix over Rq in evaluation representation, stored as
// three row vectors.
type Matrix [Dim]Vector

// MulVec returns the matrix-vector product m * v.
func (m *Matrix) MulVec(v Vector) Vector {
	var out Vector
	for row := 0; row < Dim; row++ {
		out[row] = m[row].Dot(v)
	}
	return out
}

// Transposed returns a view of the transpose. The data is shared; only the
// indexing changes.
func (m *Matrix) Transposed() TransposedMatrix {
	return TransposedMatrix{m: m}
}

// TransposedMatrix re-indexes a Matrix as its transpose without moving the
// rows.
type TransposedMatrix struct {
	m *Matrix
}

// Transposed returns the underlying matrix.
func (t TransposedMatrix) Transposed() *Matrix {
	return t.m
}

// MulVec returns the product of the transposed matrix with v.
func (t TransposedMatrix) MulVec(v Vector) Vector {
	var out Vector
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			out[row].AddProduct(&t.m[col][row], &v[col])
		}
	}
	return out
}
