// Package cli is the interactive front end of catboard.
//
// It mounts the view controller, renders its state as text and maps typed
// commands onto controller operations. Failures reported by the controller
// arrive on its notice channel and are printed by a background goroutine.
package cli
