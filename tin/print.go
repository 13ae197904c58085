package tin

import (
	"fmt"
	"io"
	"strings"

	"github.com/iceisfun/dtmesh/formatting"
)

// Print writes a detailed representation of the mesh to the writer, modeled
// on the teacher's mesh/print.go dumper.
func (m *Mesh) Print(w io.Writer) error {
	fmt.Fprintf(w, "Mesh Summary:\n")
	fmt.Fprintf(w, "  Bootstrapped: %v\n", m.bootstrapped)
	fmt.Fprintf(w, "  Locked:       %v\n", m.locked)
	fmt.Fprintf(w, "  Vertices:     %d\n", len(m.occupants))
	fmt.Fprintf(w, "  Constraints:  %d\n", len(m.constraints))
	stats := m.CountTriangles()
	fmt.Fprintf(w, "  Triangles:    %d\n", stats.Count)
	fmt.Fprintf(w, "\n")

	if len(m.occupants) > 0 {
		fmt.Fprintf(w, "Vertices:\n")
		for _, v := range m.occupants {
			fmt.Fprintf(w, "  [%d] %s\n", v.ID, formatting.PointString(v.Point()))
		}
		fmt.Fprintf(w, "\n")
	}

	perimeter := m.GetPerimeter()
	if len(perimeter) > 0 {
		fmt.Fprintf(w, "Perimeter:\n")
		for i, e := range perimeter {
			fmt.Fprintf(w, "  [%d] %s\n", i, formatting.EdgeString(e))
		}
		fmt.Fprintf(w, "\n")
	}

	return nil
}

// DumpString returns Print's output as a string, for use in test failure
// messages and REPL-style debugging, modeled on the teacher's
// mesh/print.go String() convenience wrapper.
func (m *Mesh) DumpString() string {
	var b strings.Builder
	m.Print(&b)
	return b.String()
}
