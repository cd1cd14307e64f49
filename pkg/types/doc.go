// Package types defines the residue identity and state model, the design
// session entity, configuration, and standard errors for contigctl.
package types
