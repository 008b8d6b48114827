//go:build !darwin && !linux && !freebsd && !windows

package ffi

import (
	"errors"
	"runtime"
)

func openLibrary(path string) (uintptr, error) {
	return 0, errors.New("native engine is not supported on " + runtime.GOOS)
}

func registerFunctions(handle uintptr) {}
