package adapter

import (
	m "here.dev/pkg/here/internal/model"
)

// KeystrokeEmitter queues synthetic keyboard input so the invoking shell
// runs a command once this process exits. Implementations are inherently
// platform-specific and best-effort: there is no success feedback beyond a
// synchronous error from the injection call itself.
type KeystrokeEmitter interface {
	EmitChangeDirectory(path m.Path) error
}
