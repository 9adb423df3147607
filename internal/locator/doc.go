// Package locator finds OpenTripPlanner build provenance inside a graph file.
//
// The search runs in two phases over a scanner.Scanner:
//
//  1. Anchor: the first string equal to the MavenVersion class name.
//  2. Fields: starting again at the anchor, the first 40 digit hex string is
//     the commit and, in a separate pass, the first string starting with
//     digits.digits.digits is the version text.
//
// The field passes are independent. A missing commit does not stop the
// version search and vice versa; only when both come up empty is the
// extraction reported as failed.
package locator
