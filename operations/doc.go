// Package operations implements the command level behaviors of abom:
// wrapping compiler and archiver invocations with manifest generation,
// checking dependencies against carried manifests, hashing, dumping,
// merging, and parameter tuning. Commands under cmd/ stay thin and call
// into here.
package operations
