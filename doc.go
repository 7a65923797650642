// Package wordmark keeps user-chosen words highlighted in a text editor.
//
// A Store owns the ordered list of highlight records and mirrors it to a host
// provided Memento. An Applier rescans the active document for every record and
// replaces the decorations it issued on the previous pass. Manager wires both to
// the user facing commands, and Activate hooks the Manager into a Workbench.
//
// The package never renders anything itself: documents, decorations, prompts and
// durable storage all come from the host through the interfaces in host.go.
package wordmark
