// Package crepitus scores how much of a recording's power falls inside a
// narrow band-pass output.
//
// The crepitus index is the energy of the band-pass output relative to the
// deviation energy of the raw signal, in percent:
//
//	index = sum(filtered^2) / sum((raw - mean(raw))^2) * 100
//
// The filtered energy is not mean-corrected. For a band-pass output the mean
// is close to zero so both normalizations agree in practice.
package crepitus
