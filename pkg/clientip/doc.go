// Package clientip resolves the client address of a request.
//
// Proxy headers are only trusted when named, so deployments list the headers
// their edge sets:
//
//	r.Use(clientip.Middleware("CF-Connecting-IP"))
//	...
//	ip := clientip.FromContext(r.Context())
//
// Addresses are normalized through net/netip, IPv4-mapped IPv6 addresses are
// reported in their IPv4 form.
package clientip
