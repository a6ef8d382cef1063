package battle

// Observer is notified after each intent completes. Log receives every
// transcript line the intent produced, in order; Update follows once if
// any actor-visible state changed. Observers may read the controller but
// must not issue intents from either callback.
//
// Observers are compared by identity, so implementations should be
// pointer types.
type Observer interface {
	Update()
	Log(line string)
}

// Funcs adapts plain functions to Observer. Nil fields are skipped.
type Funcs struct {
	OnUpdate func()
	OnLog    func(line string)
}

func (f *Funcs) Update() {
	if f.OnUpdate != nil {
		f.OnUpdate()
	}
}

func (f *Funcs) Log(line string) {
	if f.OnLog != nil {
		f.OnLog(line)
	}
}

// AddObserver registers o. Adding an observer twice has no effect.
func (c *Controller) AddObserver(o Observer) {
	for _, existing := range c.observers {
		if existing == o {
			return
		}
	}
	c.observers = append(c.observers, o)
}

// RemoveObserver unregisters o if present.
func (c *Controller) RemoveObserver(o Observer) {
	for i, existing := range c.observers {
		if existing == o {
			c.observers = append(c.observers[:i], c.observers[i+1:]...)
			return
		}
	}
}

// notify delivers the lines buffered during the current intent and then
// signals Update once if state changed.
func (c *Controller) notify() {
	lines := c.pending
	c.pending = nil
	changed := c.changed
	c.changed = false

	observers := append([]Observer(nil), c.observers...)
	for _, o := range observers {
		for _, line := range lines {
			o.Log(line)
		}
		if changed {
			o.Update()
		}
	}
}
