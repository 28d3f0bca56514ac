// Package biquad provides the second-order-section runtime used by the
// band-pass stage.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Sections are cascaded via
// [Chain] to run higher-order designs such as the Butterworth band-pass from
// dsp/filter/bandpass. Filtering is strictly causal: there is no zero-phase
// (forward-backward) mode, so outputs carry the cascade's transient and group
// delay.
package biquad
