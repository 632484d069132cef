package speech

type Noop struct{}

var _ Outputer = Noop{} // compile-time interface test

func (Noop) Load() error { return nil }

func (Noop) Output(string, bool) error { return nil }

func (Noop) Unload() {}
