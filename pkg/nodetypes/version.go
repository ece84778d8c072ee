// Package nodetypes holds module-wide constants for the nodetypes tool.
package nodetypes

// Version is the current release of the nodetypes tool.
const Version = "0.3.0"
