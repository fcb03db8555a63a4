//go:build darwin

package wallpaper

var platformCommands = []command{
	{
		name:   "osascript",
		binary: "osascript",
		args:   []string{"-e", `tell application "System Events" to tell every desktop to set picture to "` + pathPlaceholder + `"`},
	},
}
