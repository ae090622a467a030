package qt

import "math"

// correctBazett applies QTc = QT / sqrt(RR).
func correctBazett(qtMs, rrSec float64) float64 {
	return qtMs / math.Sqrt(rrSec)
}

// correctFridericia applies QTc = QT / cbrt(RR).
func correctFridericia(qtMs, rrSec float64) float64 {
	return qtMs / math.Cbrt(rrSec)
}

// correctFramingham applies QTc = QT + 154(1 - RR).
func correctFramingham(qtMs, rrSec float64) float64 {
	return qtMs + 154*(1-rrSec)
}

// correctHodges applies QTc = QT + 1.75(HR - 60).
func correctHodges(qtMs, heartRate float64) float64 {
	return qtMs + 1.75*(heartRate-60)
}
