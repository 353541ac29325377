// Package instance parses the launcher configuration file into validated
// instance descriptors.
//
// Each non-comment line of the file names one rqlited instance and its two
// ports. A Config can only be obtained through New, so every value that
// reaches the spawner has a name that is safe to use as a directory under the
// instances root.
package instance
