package vss

// Config holds the parameters of one (t, n) sharing scheme. A new
// configuration is a new scheme; schemes copy the value and never mutate it.
type Config struct {
	// Threshold is the number of shares needed to recover the secret.
	Threshold int

	// ShareAmount is the number of shares produced by a split.
	ShareAmount int
}

// Validate reports ErrInvalidConfig unless 1 <= Threshold <= ShareAmount.
func (c Config) Validate() error {
	if c.Threshold < 1 {
		return Errorf("Config", "%w: threshold must be positive, got %d", ErrInvalidConfig, c.Threshold)
	}
	if c.Threshold > c.ShareAmount {
		return Errorf("Config", "%w: threshold (%d) cannot exceed share amount (%d)",
			ErrInvalidConfig, c.Threshold, c.ShareAmount)
	}
	return nil
}

// ValidIndex reports whether index is a share index this configuration can
// produce.
func (c Config) ValidIndex(index int) bool {
	return index >= 1 && index <= c.ShareAmount
}
