package motion

import "github.com/go-drift/dxmotion/pkg/errors"

var errNoScroller = errors.New("motion.ScrollTo", errors.KindHost, errors.ErrNoTarget)
