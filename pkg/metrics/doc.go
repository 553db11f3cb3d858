// Package metrics exposes lifecycle event counts to Prometheus.
//
//	counter, err := metrics.NewEventCounter(prometheus.DefaultRegisterer, "formhandler")
//	metrics.Subscribe(dispatcher, counter,
//		formhandler.EventProcess, formhandler.EventSuccess, formhandler.EventFail)
//	r.Handle("/metrics", metrics.Handler(prometheus.DefaultGatherer))
//
// Counting listeners never fail, so they cannot abort a form lifecycle.
package metrics
