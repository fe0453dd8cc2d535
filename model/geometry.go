package model

// Point is a position in points, relative to the slide's top-left corner.
type Point struct {
	X, Y float64
}

// Dimensions is a size in points.
type Dimensions struct {
	W, H float64
}

// Bottom is the y-coordinate of the far edge of a node placed at pos with
// size dim — used throughout layout/overflow as "where does this node end".
func Bottom(pos Point, dim Dimensions) float64 {
	return pos.Y + dim.H
}

// Right is the x-coordinate of the far edge, the horizontal analogue of Bottom.
func Right(pos Point, dim Dimensions) float64 {
	return pos.X + dim.W
}
