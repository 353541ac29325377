// Package liveness answers whether a process id refers to a live process.
package liveness
