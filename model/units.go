package model

// EMU is a length in English Metric Units.
type EMU int64

const (
	// EMUPerInch is the number of EMUs in one inch.
	EMUPerInch EMU = 914400
	// EMUPerPoint is the number of EMUs in one typographic point.
	EMUPerPoint EMU = 12700
)

// Inches converts inches to EMUs, truncating toward zero.
func Inches(in float64) EMU {
	return EMU(in * float64(EMUPerInch))
}

// Points converts points to EMUs, truncating toward zero.
func Points(pt float64) EMU {
	return EMU(pt * float64(EMUPerPoint))
}

// Inches returns the length in inches.
func (e EMU) Inches() float64 {
	return float64(e) / float64(EMUPerInch)
}

// Points returns the length in points.
func (e EMU) Points() float64 {
	return float64(e) / float64(EMUPerPoint)
}
