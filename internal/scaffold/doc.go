// Package scaffold writes the starter files for a new integration project
// from embedded templates: the project config, a README, and a .gitignore.
// It powers the "defikit init" command.
package scaffold
