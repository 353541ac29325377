// Package sentinel provides a string-backed error type for declaring sentinel
// errors as constants.
//
// Values of Error compare by string value, so errors.Is matches them through
// wrapped chains while consumers cannot reassign them the way they could a
// package-level errors.New variable.
package sentinel
