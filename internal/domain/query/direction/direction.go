package direction

// Direction selects ascending or descending traversal over an attribute's
// dictionary order.
type Direction string

// Traversal direction constants.
const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// IsValid checks if the direction is one of the supported values.
func (d Direction) IsValid() bool {
	return d == Asc || d == Desc
}
