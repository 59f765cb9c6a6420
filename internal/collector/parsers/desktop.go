package parsers

import "strings"

// ParseGsettingsFont returns the font name from
// `gsettings get org.gnome.desktop.interface font-name`, e.g. "'Cantarell 11'".
func ParseGsettingsFont(output string) string {
	return Unquote(strings.TrimSpace(output))
}

// ShellName returns the last path segment of an interpreter path. Both '/'
// and '\' count as separators.
func ShellName(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// TrimDomain drops a leading "DOMAIN\" from an account name.
func TrimDomain(name string) string {
	if i := strings.LastIndex(name, `\`); i >= 0 {
		return name[i+1:]
	}
	return name
}
