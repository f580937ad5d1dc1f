package classify

import (
	"regexp"
	"strconv"
	"strings"
)

var numberPrefixRE = regexp.MustCompile(`^(\d+)\.` + NBSP)

// IsNumberedList reports whether line starts with "N." and a no-break space.
func IsNumberedList(line string) bool {
	return numberPrefixRE.MatchString(line)
}

// IsBulletList reports whether line starts with the bullet marker.
func IsBulletList(line string) bool {
	return strings.HasPrefix(line, "-"+NBSP)
}

// IsListItem reports whether line is a bullet or numbered item.
func IsListItem(line string) bool {
	return IsBulletList(line) || IsNumberedList(line)
}

// NextListItem returns the marker that continues the list on the next line:
// "N." becomes "N+1.", and any line containing the bullet marker continues
// with a bullet.
func NextListItem(line string) (string, bool) {
	if m := numberPrefixRE.FindStringSubmatch(line); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return strconv.Itoa(n+1) + "." + NBSP, true
		}
	}
	if strings.Contains(line, "-"+NBSP) {
		return "-" + NBSP, true
	}
	return "", false
}
