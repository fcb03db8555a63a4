//go:build !linux && !darwin

package wallpaper

// platformCommands is empty: no command-line setter is supported here
var platformCommands []command
