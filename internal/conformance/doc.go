// Package conformance replays recorded message exchanges with an embedded
// Analytical Designer or KPI Dashboards application and checks how each
// message is classified.
//
// A scenario is a YAML file listing raw messages in the order they crossed
// the boundary. Every message is decoded, classified and passed through a
// correlation tracker so that events can be paired with the commands they
// answer. The resulting trace is compared with the expectations in the
// scenario and, in tests, against a golden snapshot:
//
//	name: ad_save
//	description: Saving an insight is answered by adInsightSaved
//	correlation_ids: [corr-1]
//	messages:
//	  - message: {commandType: adSave, payload: {title: Revenue}}
//	    expect: ad.command.save
//	  - message: {eventType: adInsightSaved, correlationId: corr-1}
//	    expect: ad.event.insightSaved
//	    resolves: ad.command.save
//	assertions:
//	  - type: pending
//	    count: 0
//
// Golden files live in testdata/golden and are regenerated with
//
//	go test ./internal/conformance -update
package conformance
