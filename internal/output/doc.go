// Package output renders locate results and string dumps.
//
// WriteXML produces the four line block that OpenTripPlanner deployments
// compare against the serverinfo endpoint; it is the default output and
// its shape is fixed. WriteJSON is the machine-readable alternative.
package output
