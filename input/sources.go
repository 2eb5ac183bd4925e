package input

import "errors"

// ErrSourceConflict is returned when a websocket listener is requested
// together with a time-sampled source. Both would publish to the same slot
// and the sampled one would overwrite every tracker frame.
var ErrSourceConflict = errors.New("a websocket listener cannot be combined with replay or demo input")

// CheckSources reports whether the requested observation sources can run
// together. At most one of listen, replay and demo may be set.
func CheckSources(listen, replay string, demo bool) error {
	if listen != "" && (replay != "" || demo) {
		return ErrSourceConflict
	}
	return nil
}
