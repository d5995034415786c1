package geom

import "math"

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

const twoPi = 2 * math.Pi
