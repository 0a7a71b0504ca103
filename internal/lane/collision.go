package lane

// Collides reports whether the boundary row has an obstacle in the player's column.
func Collides(boundary Row, playerColumn int) bool {
	return boundary.Has(playerColumn)
}
