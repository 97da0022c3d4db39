package imui

// Vec2 is a position or size on the character grid.
type Vec2 struct {
	X int
	Y int
}

func V(x, y int) Vec2 { return Vec2{X: x, Y: y} }

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Mul multiplies component-wise. Size.Mul(V(0, 1)) projects onto the vertical axis.
func (a Vec2) Mul(b Vec2) Vec2 {
	return Vec2{X: a.X * b.X, Y: a.Y * b.Y}
}
