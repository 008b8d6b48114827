//go:build darwin || linux || freebsd || windows

package ffi

import (
	"github.com/ebitengine/purego"
)

func registerFunctions(handle uintptr) {
	purego.RegisterLibFunc(&fnAppRequestRedraw, handle, "centered_app_request_redraw")
	purego.RegisterLibFunc(&fnEngineVersion, handle, "centered_engine_version")
}
