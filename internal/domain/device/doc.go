// Package device contains the Device shared by every demonstration.
//
// A Device notifies its listeners, in registration order, whenever its status
// actually changes. The package also holds the App listener and the Caretaker,
// which snapshots and restores a device status.
package device
