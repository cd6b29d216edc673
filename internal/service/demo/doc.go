// Package demo runs the fixed smart-home demonstration: one section per
// pattern, in a fixed order, against a single home.
package demo
