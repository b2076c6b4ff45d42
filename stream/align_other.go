//go:build !unix

/*
NAME
  align_other.go provides the default buffer size on platforms without
  golang.org/x/sys/unix page-size support.

AUTHORS
  Scott Vance

LICENSE
  Copyright (C) 2026 the evtraw authors. All Rights Reserved.
*/

package stream

// pageSize is a conservative default for platforms where we don't ask
// the kernel.
func pageSize() int { return 4096 }
