package dsp

import (
	"github.com/mjibson/go-dsp/spectral"
)

// welchNFFT is the segment length used for Welch power-spectral-density estimates.
const welchNFFT = 1024

// BandPowerRatio estimates the power spectral density of the signal with Welch's method
// and returns the fraction of total power that falls inside [lowHz, highHz]. It returns
// 0 when the band holds no bins or the total power vanishes.
func BandPowerRatio(signal []float64, sampleRate int, lowHz, highHz float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	pxx, freqs := spectral.Pwelch(signal, float64(sampleRate), &spectral.PwelchOptions{NFFT: welchNFFT})

	var bandPower, totalPower float64
	inBand := false
	for i, f := range freqs {
		totalPower += pxx[i]
		if f >= lowHz && f <= highHz {
			bandPower += pxx[i]
			inBand = true
		}
	}
	if !inBand || totalPower <= epsilon {
		return 0
	}
	return bandPower / totalPower
}
