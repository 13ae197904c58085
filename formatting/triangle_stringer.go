package formatting

import (
	"fmt"
	"io"

	"github.com/iceisfun/dtmesh/types"
)

// TriangleString renders a triangle's vertex IDs.
func TriangleString(t types.TriangleRef) string {
	return fmt.Sprintf("Triangle{%d, %d, %d}", t.A.ID, t.B.ID, t.C.ID)
}

// WriteTriangle writes a triangle to a writer.
func WriteTriangle(w io.Writer, t types.TriangleRef) error {
	_, err := io.WriteString(w, TriangleString(t))
	return err
}
