package qt

import (
	"github.com/cardiokit/ecgcore/pkg/internal/dsp"
	"github.com/cardiokit/ecgcore/pkg/internal/types"
)

// calculateDispersion averages QT and QTc per lead and reports the cross-lead spread.
// Dispersion is only meaningful across leads, so fewer than two distinct leads yields
// nil.
func calculateDispersion(measurements []types.QTMeasurement) *types.QTDispersion {
	leadQT := make(map[string][]float64)
	leadQTc := make(map[string][]float64)
	for _, m := range measurements {
		leadQT[m.LeadName] = append(leadQT[m.LeadName], m.QTInterval)
		leadQTc[m.LeadName] = append(leadQTc[m.LeadName], m.QTcBazett)
	}
	if len(leadQT) < 2 {
		return nil
	}

	leadMeanQT := make(map[string]float64, len(leadQT))

	first := true
	var maxQT, minQT, maxQTc, minQTc float64
	for lead, values := range leadQT {
		meanQT := dsp.Mean(values)
		meanQTc := dsp.Mean(leadQTc[lead])
		leadMeanQT[lead] = meanQT

		if first {
			maxQT, minQT = meanQT, meanQT
			maxQTc, minQTc = meanQTc, meanQTc
			first = false
			continue
		}
		if meanQT > maxQT {
			maxQT = meanQT
		}
		if meanQT < minQT {
			minQT = meanQT
		}
		if meanQTc > maxQTc {
			maxQTc = meanQTc
		}
		if meanQTc < minQTc {
			minQTc = meanQTc
		}
	}

	return &types.QTDispersion{
		MaxQT:            maxQT,
		MinQT:            minQT,
		Dispersion:       maxQT - minQT,
		DispersionQTc:    maxQTc - minQTc,
		LeadMeasurements: leadMeanQT,
	}
}
