// SPDX-License-Identifier: MIT
// Package: mcflow/commodity
//
// errors.go: sentinel errors for the commodity package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Every validation sentinel wraps ErrConfig, so callers can tell
//     "bad input" apart from anything raised later in the pipeline.
//   • Context (labels, node IDs) is attached with %w at the failure site.

package commodity

import (
	"errors"
	"fmt"
)

// ErrConfig is matched by every configuration error of this package.
var ErrConfig = errors.New("commodity: invalid configuration")

// ErrEmptyLabel indicates a commodity without a label.
var ErrEmptyLabel = fmt.Errorf("%w: empty label", ErrConfig)

// ErrDuplicateLabel indicates two commodities sharing a label.
var ErrDuplicateLabel = fmt.Errorf("%w: duplicate label", ErrConfig)

// ErrDuplicateOrigin indicates two commodities sharing an origin node.
// A commodity is "all traffic leaving one node"; a second one would split it.
var ErrDuplicateOrigin = fmt.Errorf("%w: duplicate origin", ErrConfig)

// ErrOriginIsDestination indicates a commodity listing its own origin as a destination.
var ErrOriginIsDestination = fmt.Errorf("%w: origin listed as its own destination", ErrConfig)

// ErrDuplicateDestination indicates a destination declared twice for one commodity.
var ErrDuplicateDestination = fmt.Errorf("%w: duplicate destination", ErrConfig)

// ErrUnknownNode indicates an origin or destination missing from the network.
var ErrUnknownNode = fmt.Errorf("%w: node not in network", ErrConfig)

// ErrBadVolume indicates a negative, NaN or infinite demand volume.
var ErrBadVolume = fmt.Errorf("%w: bad demand volume", ErrConfig)
