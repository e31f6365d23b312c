package transition

import "time"

// Interval is a free-running periodic timer driven by game time. It fires
// when strictly more than Period has passed since it was started or last
// fired, and then measures the next period from the firing time.
type Interval struct {
	period  time.Duration
	start   time.Duration
	enabled bool
}

func NewInterval(period time.Duration) *Interval {
	return &Interval{period: period}
}

func (i *Interval) SetPeriod(period time.Duration) {
	i.period = period
}

// Start arms the interval, measuring from now. Calling it again re-arms.
func (i *Interval) Start(now time.Duration) {
	i.start = now
	i.enabled = true
}

// Update reports whether the interval fired at now. It fires at most once
// per call and never while disabled.
func (i *Interval) Update(now time.Duration) bool {
	if !i.enabled {
		return false
	}
	if now-i.start > i.period {
		i.start = now
		return true
	}
	return false
}

func (i *Interval) Disable() {
	i.enabled = false
}

func (i *Interval) Enabled() bool {
	return i.enabled
}
