// Package pipe converts frequencies into physical resonator lengths and
// ties the whole calculation together: scale pattern, chromatic table,
// frequency series, lengths. Lengths model a quarter-wave stopped pipe with
// simple additive end corrections for plug depth and tube diameter; there is
// no physical simulation beyond that.
package pipe
