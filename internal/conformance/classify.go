package conformance

import (
	"github.com/roach88/afmkit/embedding"
	"github.com/roach88/afmkit/embedding/ad"
	"github.com/roach88/afmkit/embedding/kd"
)

// Class names used for envelopes outside the two applications' vocabularies.
const (
	ClassCommandFailed = "app.event.commandFailed"
	ClassUnknown       = "unknown"
	ClassEmpty         = "empty"
)

// Classify names the variant of e: "ad.command.save", "kd.event.dashboardSaved",
// ClassCommandFailed for failure events of either application, or
// "unknown.command.<type>" and "unknown.event.<type>" for literals neither
// application defines. Empty envelopes are ClassEmpty.
func Classify(e embedding.Envelope) string {
	if name, ok := ad.Classify(e); ok {
		return name
	}
	if name, ok := kd.Classify(e); ok {
		return name
	}
	if embedding.IsCommandFailed(e) {
		return ClassCommandFailed
	}
	if e == nil || e.Kind() == embedding.KindNone {
		return ClassEmpty
	}
	return ClassUnknown + "." + e.Kind().String() + "." + e.TypeName()
}
