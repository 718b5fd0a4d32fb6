package app

// Update wraps Transition with preference persistence: every transition, no
// matter the event, is followed by a persist effect for the new preferences.
// Persisting an unchanged record is idempotent, so no dirty tracking is
// needed. The persist effect is ordered after the transition's own effects.
func Update(ev Event, st State) (State, []Effect) {
	next, effects := Transition(ev, st)
	return next, append(effects, PersistPreferences{Prefs: next.Prefs})
}
