// Package rpcerr defines the typed error every failed remote call resolves to.
//
// A single concrete type carries the kind as data instead of one Go type per
// server error, so new catalog entries never require a rebuild:
//
//	err := classifier.Classify(ctx, rpcerr.Report{Code: 420, Message: "FLOOD_WAIT_5"}, "messages.SendMessage")
//	// [420 FLOOD_WAIT_X]: A wait of 5 seconds is required (caused by "messages.SendMessage")
//
//	if e, ok := rpcerr.As(err); ok && e.Kind == "FLOOD_WAIT" {
//		time.Sleep(time.Duration(*e.Param) * time.Second)
//	}
//
// Unknown reports whether the classification is approximate: the report either
// matched only its code family or nothing at all.
package rpcerr
