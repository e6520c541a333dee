package animation

import "time"

// StaggerOrigin picks the sibling that starts first.
type StaggerOrigin string

const (
	StaggerFirst  StaggerOrigin = "first"
	StaggerLast   StaggerOrigin = "last"
	StaggerCenter StaggerOrigin = "center"
)

// StaggerOptions configures [Stagger].
type StaggerOptions struct {
	// Start is added to every delay.
	Start time.Duration
	// From defaults to StaggerFirst.
	From StaggerOrigin
	// Ease shapes how delays grow with distance from the origin.
	Ease Easing
}

// Stagger returns a DelayFunc spreading sibling start times over duration.
// A sibling's delay grows with its distance from the origin index; the
// furthest sibling starts duration after the origin. A lone sibling starts
// at Start.
func Stagger(duration time.Duration, opts StaggerOptions) DelayFunc {
	return func(index, total int) time.Duration {
		if total <= 1 {
			return opts.Start
		}
		var origin int
		switch opts.From {
		case StaggerLast:
			origin = total - 1
		case StaggerCenter:
			origin = total / 2
		default:
			origin = 0
		}
		distance := index - origin
		if distance < 0 {
			distance = -distance
		}
		p := Progress(0, float64(total-1), float64(distance))
		if opts.Ease != nil {
			p = opts.Ease(p)
		}
		return opts.Start + time.Duration(p*float64(duration))
	}
}
