//go:build darwin

package prompt

// select() takes a different FdSet here, don't probe.
func probeWidth(ifd, ofd int) (int, bool) {
	return 0, false
}
