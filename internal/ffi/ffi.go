// Package ffi provides the render-command vocabulary shared with the native
// engine, and the purego bindings used to talk to it when it is loaded.
//
// The engine is optional: until Init succeeds every call here is a no-op, so
// widgets can be driven headless (tests, the CLI) with the same code path.
package ffi

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"unsafe"

	"go.uber.org/zap"
)

// LibPathEnv names the environment variable that overrides engine library discovery.
const LibPathEnv = "TOGGLEPASS_LIB_PATH"

var (
	libHandle   uintptr
	libOnce     sync.Once
	libErr      error
	initialized bool
)

// Library function pointers (populated by registerFunctions)
var (
	fnAppRequestRedraw func() int32
	fnEngineVersion    func() uintptr
)

// getLibraryPath returns the path to the dynamic library
func getLibraryPath() string {
	if path := os.Getenv(LibPathEnv); path != "" {
		return path
	}

	var libName string
	switch runtime.GOOS {
	case "darwin":
		libName = "libcentered_engine.dylib"
	case "windows":
		libName = "centered_engine.dll"
	default:
		libName = "libcentered_engine.so"
	}

	searchPaths := []string{
		libName,
		filepath.Join("engine", "target", "release", libName),
		filepath.Join("engine", "target", "debug", libName),
	}

	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		searchPaths = append(searchPaths,
			filepath.Join(execDir, libName),
			filepath.Join(execDir, "..", "lib", libName),
		)
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			if absPath, err := filepath.Abs(path); err == nil {
				return absPath
			}
			return path
		}
	}

	// Let the system loader search for it
	return libName
}

// Init loads the engine library and registers its functions.
// It is safe to call more than once; only the first call does any work.
func Init() error {
	libOnce.Do(func() {
		l := zap.L().Named("ffi")
		libPath := getLibraryPath()
		l.Debug("Loading engine library", zap.String("path", libPath), zap.String("goos", runtime.GOOS))

		libHandle, libErr = openLibrary(libPath)
		if libErr != nil {
			libErr = fmt.Errorf("failed to load engine library from %s: %w", libPath, libErr)
			l.Warn("Engine library unavailable, rendering stays headless", zap.Error(libErr))
			return
		}

		registerFunctions(libHandle)
		initialized = true
	})

	return libErr
}

// Loaded reports whether the engine library was loaded successfully.
func Loaded() bool {
	return initialized
}

// RequestRedraw asks the engine to schedule a frame. No-op when headless.
func RequestRedraw() {
	if !initialized {
		return
	}
	fnAppRequestRedraw()
}

// Version returns the engine version string, or "" when headless.
func Version() string {
	if !initialized {
		return ""
	}
	return goString(fnEngineVersion())
}

// goString copies a NUL-terminated C string owned by the engine.
func goString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	var length int
	for *(*byte)(unsafe.Pointer(ptr + uintptr(length))) != 0 {
		length++
		if length > 1<<20 {
			break
		}
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), length))
}
