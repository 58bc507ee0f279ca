package graph

import "fmt"

// DuplicateNodeError reports two input nodes sharing the same id.
type DuplicateNodeError struct {
	ID string
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("duplicate node id %q", e.ID)
}

// DanglingEdgeError reports an edge referencing a node id that does not exist.
type DanglingEdgeError struct {
	EdgeID    string
	MissingID string
}

func (e *DanglingEdgeError) Error() string {
	return fmt.Sprintf("edge %q references unknown node %q", e.EdgeID, e.MissingID)
}

// InvalidArgumentError reports a programming error in a query argument,
// such as a negative traversal depth.
type InvalidArgumentError struct {
	Arg    string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Arg, e.Reason)
}
