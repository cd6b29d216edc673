// Package home assembles one demo household: a light with its listener,
// undo/redo history, alert chain, fan, scheduler, hub and caretaker, all
// reporting to a single event.Reporter.
package home
