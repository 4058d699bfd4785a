package coclust

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// formatBlockMatrix renders a as a human-readable grid for debug-level
// logging, via gonum's matrix formatter. BlockMatrix itself stays
// float32 end to end (matching the GPU-kernel data contract); this
// conversion only exists for the debug print path.
func formatBlockMatrix(a *BlockMatrix) string {
	data := make([]float64, len(a.Data))
	for i, v := range a.Data {
		data[i] = float64(v)
	}
	d := mat.NewDense(a.R, a.C, data)

	return fmt.Sprintf("%v", mat.Formatted(d, mat.Prefix(""), mat.Squeeze()))
}
