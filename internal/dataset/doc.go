// Package dataset renders content items as a JavaScript file that assigns a
// global variable, for the static site to load with a plain script tag.
package dataset
