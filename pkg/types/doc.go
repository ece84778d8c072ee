// Package types defines the schema model (node types, property and child-node
// definitions), the Repository and Session interfaces through which reports
// read a schema store, configuration, and the standard error values.
package types
