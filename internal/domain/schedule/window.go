package schedule

import "time"

// ResolveWindow turns a provider's weekly rules into the concrete open
// interval for one calendar date. The provider's configured location is the
// only timezone consulted; neither the server zone nor the database session
// zone ever participates in day-of-week or boundary derivation.
//
// Returns false when the provider is closed that day (no active rule for the
// weekday). Callers distinguish "closed today" from "no schedule at all" by
// checking len(rules) before resolving.
func ResolveWindow(rules []WorkingHourRule, date Date, loc *time.Location) (Window, bool) {
	weekday := date.Weekday()
	for _, r := range rules {
		if !r.Active || r.Weekday != weekday {
			continue
		}
		if r.Validate() != nil {
			continue
		}
		return Window{
			Start: date.At(r.Start, loc),
			End:   date.At(r.End, loc),
		}, true
	}
	return Window{}, false
}
