//go:build !linux

package gl

import "errors"

// ErrUnsupportedPlatform is returned by Load where no native binding
// is available.
var ErrUnsupportedPlatform = errors.New("gl: no native binding for this platform")

// Load resolves the proc table so missing symbols are still reported,
// then fails: calls are only wired through goffi on Linux.
func Load(getProcAddr ProcAddressFunc) (Functions, error) {
	if _, err := Resolve(getProcAddr); err != nil {
		return nil, err
	}
	return nil, ErrUnsupportedPlatform
}
