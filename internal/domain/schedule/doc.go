// Package schedule holds interchangeable scheduling strategies for a device.
package schedule
