package formatting

import (
	"fmt"
	"io"
	"strings"

	"github.com/iceisfun/dtmesh/types"
)

// PolygonLoopString renders a polygon loop's vertex IDs.
func PolygonLoopString(loop types.PolygonLoop) string {
	parts := make([]string, len(loop))
	for i, v := range loop {
		parts[i] = fmt.Sprintf("%d", v.ID)
	}
	return fmt.Sprintf("PolygonLoop{%s}", strings.Join(parts, ", "))
}

// WritePolygonLoop writes a polygon loop representation to a writer.
func WritePolygonLoop(w io.Writer, loop types.PolygonLoop) error {
	_, err := io.WriteString(w, PolygonLoopString(loop))
	return err
}
