//go:build linux

package wallpaper

import "strings"

func onHyprland(getenv func(string) string) bool {
	return getenv("HYPRLAND_INSTANCE_SIGNATURE") != ""
}

func onWayland(getenv func(string) string) bool {
	return getenv("WAYLAND_DISPLAY") != "" || getenv("XDG_SESSION_TYPE") == "wayland"
}

func onGnome(getenv func(string) string) bool {
	return strings.Contains(strings.ToLower(getenv("XDG_CURRENT_DESKTOP")), "gnome")
}

// platformCommands lists setters from most to least specific
var platformCommands = []command{
	{name: "swww", binary: "swww", args: []string{"img", pathPlaceholder}, preferred: onHyprland},
	{name: "hyprpaper", binary: "hyprctl", args: []string{"hyprpaper", "wallpaper", "," + pathPlaceholder}, preferred: onHyprland},
	{name: "gnome", binary: "gsettings", args: []string{"set", "org.gnome.desktop.background", "picture-uri-dark", "file://" + pathPlaceholder}, preferred: onGnome},
	{name: "swaybg", binary: "swaybg", args: []string{"-i", pathPlaceholder, "-m", "fill"}, preferred: onWayland},
	{name: "feh", binary: "feh", args: []string{"--bg-fill", pathPlaceholder}},
	{name: "nitrogen", binary: "nitrogen", args: []string{"--set-zoom-fill", pathPlaceholder}},
}
