package geometry

// Vector2 represents a 2D point, typically a UV coordinate
type Vector2 struct {
	U, V float64
}

// NewVector2 creates a new 2D vector
func NewVector2(u, v float64) Vector2 {
	return Vector2{U: u, V: v}
}
