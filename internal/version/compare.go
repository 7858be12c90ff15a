// Package version gates strategy runs on host compatibility. Hosts embedding
// the library record the library version their run configs were written for;
// a mismatch beyond patch level refuses to start rather than misbehaving mid
// run.
package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/argo-strategies/pkg/errors"
)

// CheckCompatibility reports whether a host built against requiredVersion can
// run this library build.
//
// Rules:
//   - "main" on either side is a development build and skips the check
//   - major and minor versions must match exactly
//   - patch versions may differ
func CheckCompatibility(libraryVersion, requiredVersion string) error {
	libraryVersion = strings.TrimPrefix(libraryVersion, "v")
	requiredVersion = strings.TrimPrefix(requiredVersion, "v")

	if libraryVersion == "main" || requiredVersion == "main" {
		return nil
	}

	library, err := semver.NewVersion(libraryVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeVersionMismatch, err, "invalid library version %q", libraryVersion)
	}

	required, err := semver.NewVersion(requiredVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeVersionMismatch, err, "invalid required version %q", requiredVersion)
	}

	if library.Major() != required.Major() {
		return errors.Newf(errors.ErrCodeVersionMismatch,
			"major version mismatch: library is %d.x.x but host requires %d.x.x",
			library.Major(), required.Major())
	}

	if library.Minor() != required.Minor() {
		return errors.Newf(errors.ErrCodeVersionMismatch,
			"minor version mismatch: library is %d.%d.x but host requires %d.%d.x",
			library.Major(), library.Minor(), required.Major(), required.Minor())
	}

	return nil
}
