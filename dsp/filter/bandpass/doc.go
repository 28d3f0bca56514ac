// Package bandpass designs and runs Butterworth band-pass filters as cascades
// of second-order sections.
//
// Design follows the classic analog route: an order-N Butterworth low-pass
// prototype is shifted to a band-pass around the pre-warped band edges and
// mapped to the z-plane with the bilinear transform. The resulting 2N poles
// are grouped into N biquads, each carrying one zero at z = +1 and one at
// z = -1. Filtering is a single causal forward pass.
package bandpass
