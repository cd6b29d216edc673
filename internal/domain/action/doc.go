// Package action implements reversible device actions and the linear
// undo/redo History over them.
//
// Executing through the History clears the redo branch. An action moves
// between the undo and redo stacks and is never on both.
package action
