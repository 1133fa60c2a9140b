// Package renderer formats navlog data for the console: the run summary as plain
// text and the reports as markdown.
package renderer
