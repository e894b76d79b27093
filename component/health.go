package component

// Health is the player's health bar. It is a plain counter; the simulation
// only attacks it and asks it to die.
type Health struct {
	Max     int
	Current int
	Dead    bool

	OnDamage func(h *Health, amount int)
	OnDeath  func(h *Health)
}

// NewHealth creates a Health with max/current initialized.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// Health returns the current value.
func (h *Health) Health() int {
	if h == nil {
		return 0
	}
	return h.Current
}

// IsAlive reports whether the bar has not hit zero.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// Attack subtracts amount. Health may drop below zero; Die is a separate
// decision made by the caller.
func (h *Health) Attack(amount int) {
	if h == nil || h.Dead || amount <= 0 {
		return
	}
	h.Current -= amount
	if h.OnDamage != nil {
		h.OnDamage(h, amount)
	}
}

// Die marks the bar dead. Repeated calls are no-ops.
func (h *Health) Die() {
	if h == nil || h.Dead {
		return
	}
	h.Dead = true
	if h.Current > 0 {
		h.Current = 0
	}
	if h.OnDeath != nil {
		h.OnDeath(h)
	}
}

// Heal restores health up to Max.
func (h *Health) Heal(amount int) {
	if h == nil || h.Dead || amount <= 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Ratio returns Current/Max clamped to [0, 1].
func (h *Health) Ratio() float64 {
	if h == nil || h.Max <= 0 || h.Current <= 0 {
		return 0
	}
	if h.Current >= h.Max {
		return 1
	}
	return float64(h.Current) / float64(h.Max)
}
