// Package generator runs one content index generation: scan the platform
// directories, validate the items, emit the data file, and sync the README.
//
// Run holds an exclusive lock for its duration so two invocations never write
// the outputs at the same time. Check performs the same scan, validation, and
// README rendering without touching any file.
package generator
