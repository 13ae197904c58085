package formatting

import (
	"fmt"
	"io"

	"github.com/iceisfun/dtmesh/types"
)

// EdgeString renders an edge by its endpoint vertex IDs in canonical form.
func EdgeString(e types.EdgeRef) string {
	return fmt.Sprintf("Edge{%d, %d}", e.A.ID, e.B.ID)
}

// WriteEdge writes an edge to a writer.
func WriteEdge(w io.Writer, e types.EdgeRef) error {
	_, err := io.WriteString(w, EdgeString(e))
	return err
}
