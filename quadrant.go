package quad

// Quadrant identifies one of the four children of a subdivided node.
// The enumeration order is fixed: insertion offers entries to children
// in this order and traversal visits children in this order, so two
// trees built from the same insertion sequence have identical shape.
type Quadrant int

const (
	NE Quadrant = iota // north-east: right half, top half
	NW                 // north-west: left half, top half
	SE                 // south-east: right half, bottom half
	SW                 // south-west: left half, bottom half
)

// quadrants lists all quadrants in their fixed order.
var quadrants = [4]Quadrant{NE, NW, SE, SW}

func (q Quadrant) String() string {
	switch q {
	case NE:
		return "NE"
	case NW:
		return "NW"
	case SE:
		return "SE"
	case SW:
		return "SW"
	}
	return "invalid"
}
