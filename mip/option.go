package mip

// Option configures a Model at creation time.
type Option func(*Model) error

// WithLogger makes the model report solve progress through the given
// logger instead of staying silent.
func WithLogger(logger Logger) Option {
	return func(m *Model) error {
		m.logger = logger

		return nil
	}
}
