// Package alert implements the alert Chain of Responsibility.
//
// Each link matches one category. A match is reported and stops the walk;
// a mismatch forwards to the successor; the last link drops the alert
// silently. The order is fixed when the chain is built.
package alert
