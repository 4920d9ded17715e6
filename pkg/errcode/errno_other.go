//go:build !unix

package errcode

import "syscall"

func errnoName(syscall.Errno) string {
	return ""
}
