// Package signal synthesizes the test recordings fed to the detector: a time
// axis, pure tones and seeded Gaussian noise.
package signal
