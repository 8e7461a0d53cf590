// Package analysis provides spectral checks for evaluated secular series.
//
// A secular proxy series is a finite sum of sinusoids at the model's
// eigenfrequencies, so its power spectrum should peak at those
// frequencies. The package exposes:
//
//   - [FFT]: radix-2 transform (input zero-padded to a power of two)
//   - [PowerSpectrum]: one-sided magnitude spectrum
//   - [DominantFrequency]: location of the strongest non-DC peak
//
// Useful for confirming that the eigenmode decomposition and the evaluated
// time series agree with each other.
package analysis
