// Package clientip resolves the address of the client behind edge proxies.
//
// Forwarding headers are written by whoever sends the request, so by default
// only the peer address (RemoteAddr) is used. Behind a proxy, configure the
// header it sets and, ideally, its addresses:
//
//	rs := clientip.New(
//		clientip.WithTrustedHeader("X-Forwarded-For"),
//		clientip.WithTrustedProxies(netip.MustParsePrefix("10.0.0.0/8")),
//	)
//	r.Use(rs.Middleware)
//
// List headers are read from the right, skipping trusted proxies, so the
// entry returned is the one appended by the nearest proxy the service
// trusts. Every candidate must parse as an IPv4 or IPv6 address.
//
// FromRequest reads the address stored by the middleware, falling back to
// the peer address:
//
//	ip := clientip.FromRequest(r)
package clientip
