// pipename_unix.go: Unix domain socket name formatting
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package daedalus

import (
	"os"
	"strconv"
)

// formatPipeName assembles <tmpdir>/<prefix>-<uid>-<pid>.sock through the
// shared buffer pool. The uid component keeps names from colliding between
// users on a shared machine.
func formatPipeName(prefix string, pid int) string {
	buf := getBuffer()
	buf.WriteString(os.TempDir())
	buf.WriteByte(os.PathSeparator)
	buf.WriteString(prefix)
	buf.WriteByte('-')
	buf.WriteString(strconv.Itoa(os.Getuid()))
	buf.WriteByte('-')
	buf.WriteString(strconv.Itoa(pid))
	buf.WriteString(".sock")
	name := buf.String()
	putBuffer(buf)
	return name
}
