package record

import "regexp"

var nonIdentRx = regexp.MustCompile(`[^0-9A-Za-z_]+`)

// NormalizeKey collapses every maximal run of characters outside
// [0-9A-Za-z_] into a single underscore. Distinct keys may normalize to the
// same identifier; the record-level rule is last write wins.
func NormalizeKey(name string) string {
	return nonIdentRx.ReplaceAllString(name, "_")
}
