package imui

type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	default:
		return "vertical"
	}
}

// axis is the unit vector children are stacked along.
func (o Orientation) axis() Vec2 {
	if o == Horizontal {
		return V(1, 0)
	}
	return V(0, 1)
}

// Layout is one open scope on the layout stack.
type Layout struct {
	Orientation Orientation
	Origin      Vec2
	Size        Vec2
}

// AvailablePosition is where the next child will be placed.
func (l *Layout) AvailablePosition() Vec2 {
	return l.Origin.Add(l.Size.Mul(l.Orientation.axis()))
}

// AddWidget grows the layout along its stacking axis by the child's extent and
// widens the cross axis to fit the child.
func (l *Layout) AddWidget(child Vec2) {
	switch l.Orientation {
	case Horizontal:
		l.Size.X += child.X
		l.Size.Y = max(l.Size.Y, child.Y)
	default:
		l.Size.X = max(l.Size.X, child.X)
		l.Size.Y += child.Y
	}
}
