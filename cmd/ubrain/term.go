package main

import (
	"golang.org/x/sys/unix"
)

const (
	getTermios = unix.TCGETS
	setTermios = unix.TCSETS
)

// isTerminal reports whether fd is a terminal.
func isTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), getTermios)
	return err == nil
}

// enterRawTerm puts the terminal into byte-at-a-time, no-echo mode so the
// input port sees bytes as they are typed rather than line buffered. The
// returned function restores the saved terminal state.
func enterRawTerm(fd uintptr) (restore func(), err error) {
	termios, err := unix.IoctlGetTermios(int(fd), getTermios)
	if err != nil {
		return
	}

	saved := *termios
	termstate := *termios

	termstate.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.INLCR | unix.ICRNL
	termstate.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.IEXTEN

	termstate.Cc[unix.VMIN] = 1
	termstate.Cc[unix.VTIME] = 0

	err = unix.IoctlSetTermios(int(fd), setTermios, &termstate)
	if err != nil {
		return
	}

	restore = func() {
		unix.IoctlSetTermios(int(fd), setTermios, &saved)
	}
	return
}
