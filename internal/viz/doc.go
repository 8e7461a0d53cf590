// Package viz renders secular trajectories and mode tables for the
// terminal: asciigraph line plots of element histories and lipgloss-styled
// headers shared by the CLI commands.
package viz
