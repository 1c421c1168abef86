// Package callermodule derives the package path of the nearest caller outside
// this library. It backs the sentinel.Sentinel convenience constructor, which
// scopes a sentinel value to the package that declared it without the caller
// having to spell its own import path out.
package callermodule

import (
	"errors"
	"reflect"
	"runtime"
	"strings"
)

// ErrCallerUnavailable is returned when no frame outside the library can be
// resolved from the call stack, such as on platforms or build modes that
// strip stack information.
var ErrCallerUnavailable = errors.New("no caller frame outside the sentinel library")

// maxStackDepth bounds the stack walk. The walk normally terminates within a
// few frames (the public constructor, its Safely variant, and this package),
// so running out of frames means something unusual is going on, and in that
// case ErrCallerUnavailable is the right answer anyway.
const maxStackDepth = 32

// ownPackage is this package's own import path, derived from a known function
// symbol so it stays correct if the module is renamed or vendored.
var ownPackage = func() string { //nolint:gochecknoglobals
	fn := runtime.FuncForPC(reflect.ValueOf(packageOfFunc).Pointer())
	if fn == nil {
		return ""
	}
	return packageOfFunc(fn.Name())
}()

// rootPackage is the library's public package, whose frames (the constructors
// that call in here) must also be skipped during the walk.
var rootPackage = strings.TrimSuffix(ownPackage, "/internal/callermodule") //nolint:gochecknoglobals

// Caller walks the call stack and returns the package path of the first frame
// that doesn't belong to the sentinel library itself. Returns
// ErrCallerUnavailable when the stack can't be resolved that far.
func Caller() (string, error) {
	var pcs [maxStackDepth]uintptr
	n := runtime.Callers(2, pcs[:]) // skip runtime.Callers and Caller itself
	if n == 0 {
		return "", ErrCallerUnavailable
	}

	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()

		if pkg := packageOfFunc(frame.Function); pkg != "" && !isLibraryPackage(pkg) {
			return pkg, nil
		}

		if !more {
			return "", ErrCallerUnavailable
		}
	}
}

// isLibraryPackage reports whether pkg is one of the library's own packages
// whose frames sit between the real caller and the stack walk. Test packages
// get a "_test" import path suffix and so intentionally don't match.
func isLibraryPackage(pkg string) bool {
	return pkg == ownPackage || pkg == rootPackage
}

// packageOfFunc extracts the package path from a runtime function symbol like
// "github.com/acme/widget.(*T).Method" or "main.main". Returns "" when the
// symbol doesn't carry a package.
func packageOfFunc(funcName string) string {
	if funcName == "" {
		return ""
	}

	// Generic instantiations carry type arguments in brackets which may
	// themselves contain package paths; trim them before splitting.
	if i := strings.IndexByte(funcName, '['); i >= 0 {
		funcName = funcName[:i]
	}

	// The package path is everything up to the first dot after the last
	// slash ("example.com/foo/bar.Func" -> "example.com/foo/bar").
	slash := strings.LastIndexByte(funcName, '/')
	dot := strings.IndexByte(funcName[slash+1:], '.')
	if dot == -1 {
		return ""
	}
	return funcName[:slash+1+dot]
}
