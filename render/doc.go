// Package render turns a computed pipe rank into an audible preview: one
// sine tone per pipe with a short raised-cosine fade, concatenated with
// silent gaps, written as 16-bit mono WAV. It also provides a spectral
// dominant-frequency estimate used to verify rendered tones.
package render
