// Package spectrum provides the frequency-domain cross-checks used to
// describe a detection: single-bin tone estimation (Goertzel), periodogram
// band-energy fractions and Welch power spectral density.
//
// FFTs come from algo-fft, bin power from algo-vecmath and Welch averaging
// from go-dsp. None of these functions are required to compute the crepitus
// index itself.
package spectrum
