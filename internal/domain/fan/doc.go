// Package fan models a multi-speed fan switch as a State machine cycling
// OFF, LOW, MEDIUM, HIGH and back to OFF.
package fan
