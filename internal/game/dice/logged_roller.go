package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger so every roll leaves an audit trail at debug level.
// Roller itself satisfies Source, so it can be handed to anything that rolls.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Intn delegates to the wrapped Source and logs the result.
func (r *Roller) Intn(n int) int {
	v := r.src.Intn(n)
	r.logger.Debug("dice roll",
		zap.Int("n", n),
		zap.Int("result", v),
	)
	return v
}

// Between rolls in [lo, hi] and logs the label alongside the result.
//
// Postcondition: lo <= result <= hi, or an error for an empty range.
func (r *Roller) Between(label string, lo, hi int) (int, error) {
	v, err := Between(r.src, lo, hi)
	if err != nil {
		return 0, err
	}
	r.logger.Debug("dice range roll",
		zap.String("label", label),
		zap.Int("lo", lo),
		zap.Int("hi", hi),
		zap.Int("result", v),
	)
	return v, nil
}

// RollBetween rolls in [lo, hi]. A *Roller logs the roll under label; any
// other Source rolls silently.
func RollBetween(src Source, label string, lo, hi int) (int, error) {
	if r, ok := src.(*Roller); ok {
		return r.Between(label, lo, hi)
	}
	return Between(src, lo, hi)
}
