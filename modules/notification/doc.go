// Package notification implements POST /api/send-email, the only server
// endpoint of the host-city guide.
//
// Two request types are accepted:
//
//	{"type":"predictor-signup","data":{"name":..,"email":..,"country":..,"uniqueId":..,"predictions":{..}}}
//	{"type":"contact-form","data":{"name":..,"email":..,"message":..}}
//
// A signup is upserted by uniqueId when a PredictionStore is configured,
// then an admin notification and a confirmation with a deep link to the
// entry are sent concurrently. Neither the store nor the emails can fail a
// signup: their errors are logged and counted. A contact message is sent
// to the site address with Reply-To set to the submitter, and a failed send
// answers 500.
//
// Every user-supplied value is escaped before it is placed in email HTML
// and collapsed to one line before it is placed in a subject.
//
//	svc := notification.NewService(cfg, sender, origin.New(cfg.Origins()), limiter,
//		notification.WithStore(notification.NewPostgresStore(pool)),
//		notification.WithLogger(log),
//		notification.WithMetrics(m),
//	)
//	r.Mount("/api", svc.Handle())
package notification
