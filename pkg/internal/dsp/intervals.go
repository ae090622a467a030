package dsp

import (
	"math"
	"sort"

	"github.com/cardiokit/ecgcore/pkg/internal/types"
)

// Fallback interval values reported when the upstream measurement stage supplies none.
const (
	defaultPRMs  = 150.0
	defaultQRSMs = 90.0
	defaultQTMs  = 400.0
	defaultQTcMs = 420.0
)

// ComputeIntervals derives a basic interval measurement set directly from the signals:
// R-peaks on lead II (or the first lead by name when II is absent) with a 400 ms minimum
// spacing, RR intervals in ms and the mean heart rate. PR, QRS and QT values are fixed
// nominal placeholders; dedicated measurement stages refine them upstream.
func ComputeIntervals(signals types.SignalMap, sampleRate int) types.Intervals {
	lead, ok := signals["II"]
	if !ok {
		names := make([]string, 0, len(signals))
		for name := range signals {
			names = append(names, name)
		}
		sort.Strings(names)
		if len(names) == 0 {
			return types.Intervals{}
		}
		lead = signals[names[0]]
	}

	minDistance := int(float64(sampleRate) * 0.4)
	peaks := FindPeaks(lead, math.Inf(-1), minDistance)

	iv := types.Intervals{}
	if len(peaks) > 1 {
		rr := DiffInts(peaks)
		rrMs := make([]float64, len(rr))
		for i, v := range rr {
			rrMs[i] = v / float64(sampleRate) * 1000
		}
		iv.RRIntervals = rrMs
		if m := Mean(rrMs); m > epsilon {
			hr := 60000 / m
			iv.HeartRate = &hr
		}
	}

	pr := defaultPRMs
	qrs := defaultQRSMs
	qt := defaultQTMs
	qtc := defaultQTcMs
	iv.PRInterval = &pr
	iv.QRSDuration = &qrs
	iv.QTInterval = &qt
	iv.QTcInterval = &qtc
	return iv
}
