//go:build unix

/*
NAME
  align_unix.go sizes the framed reader's default buffer to the host
  page size on platforms golang.org/x/sys/unix supports.

AUTHORS
  Scott Vance

LICENSE
  Copyright (C) 2026 the evtraw authors. All Rights Reserved.
*/

package stream

import "golang.org/x/sys/unix"

// pageSize returns the host's memory page size, used to pick a buffer
// size that's friendly to the underlying read syscalls.
func pageSize() int {
	return unix.Getpagesize()
}
