// pipename_windows.go: Windows named-pipe name formatting
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

//go:build windows

package daedalus

import (
	"strconv"
)

// formatPipeName assembles \\.\pipe\<prefix>-<pid> through the shared
// buffer pool.
func formatPipeName(prefix string, pid int) string {
	buf := getBuffer()
	buf.WriteString(`\\.\pipe\`)
	buf.WriteString(prefix)
	buf.WriteByte('-')
	buf.WriteString(strconv.Itoa(pid))
	name := buf.String()
	putBuffer(buf)
	return name
}
