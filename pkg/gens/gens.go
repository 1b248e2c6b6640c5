// Package gens registers every generator family with pkg/core. Programs
// import it for its side effects.
package gens

import (
	_ "procrand/pkg/gens/diver"
	_ "procrand/pkg/gens/fourwheel"
	_ "procrand/pkg/gens/gear"
	_ "procrand/pkg/gens/moonwalk"
	_ "procrand/pkg/gens/stranger"
	_ "procrand/pkg/gens/trim"
)
