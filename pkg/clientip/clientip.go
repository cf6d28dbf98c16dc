package clientip

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Config selects the proxy header that carries the client address.
// With no header configured only the peer address is used, since any other
// header can be forged by the caller.
type Config struct {
	// TrustedHeader is set by the edge in front of the service, e.g.
	// CF-Connecting-IP, Fly-Client-IP or X-Forwarded-For.
	TrustedHeader string `env:"CLIENT_IP_HEADER"`
	// TrustedProxies lists the CIDRs or addresses of those proxies. When
	// set, TrustedHeader is honored only for requests coming from them.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// Resolver extracts client addresses. It is safe for concurrent use.
type Resolver struct {
	header  string
	proxies []netip.Prefix
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTrustedHeader honors the named header. List headers are read from the
// right, so entries a client prepends are never used.
func WithTrustedHeader(name string) Option {
	return func(r *Resolver) {
		r.header = http.CanonicalHeaderKey(strings.TrimSpace(name))
	}
}

// WithTrustedProxies restricts the trusted header to requests whose peer
// address falls in one of prefixes. List entries added by these proxies are
// skipped when walking a list header.
func WithTrustedProxies(prefixes ...netip.Prefix) Option {
	return func(r *Resolver) {
		r.proxies = append(r.proxies, prefixes...)
	}
}

// New returns a resolver. Without options it reports the peer address only.
func New(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewFromConfig builds a resolver from cfg.
func NewFromConfig(cfg Config) (*Resolver, error) {
	opts := []Option{WithTrustedHeader(cfg.TrustedHeader)}

	prefixes := make([]netip.Prefix, 0, len(cfg.TrustedProxies))
	for _, s := range cfg.TrustedProxies {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		p, err := parsePrefix(s)
		if err != nil {
			return nil, errors.Join(ErrInvalidTrustedProxy, fmt.Errorf("%q: %w", s, err))
		}
		prefixes = append(prefixes, p)
	}
	if len(prefixes) > 0 {
		opts = append(opts, WithTrustedProxies(prefixes...))
	}

	return New(opts...), nil
}

var defaultResolver = New()

// GetIP returns the peer address of the request. Proxy headers are ignored;
// use a Resolver configured with a trusted header behind a proxy.
//
// Returns an empty string when nothing parses as an IP.
func GetIP(r *http.Request) string {
	return defaultResolver.Resolve(r)
}

// Resolve returns the client address of req. The trusted header wins when
// it holds a usable address and the peer is a trusted proxy; otherwise the
// peer address is returned.
func (rs *Resolver) Resolve(req *http.Request) string {
	peer := peerIP(req.RemoteAddr)

	if rs.header != "" && rs.fromTrustedPeer(peer) {
		if ip := rs.fromHeader(req.Header.Values(rs.header)); ip != "" {
			return ip
		}
	}

	if !peer.IsValid() {
		return ""
	}
	return peer.String()
}

func (rs *Resolver) fromTrustedPeer(peer netip.Addr) bool {
	if len(rs.proxies) == 0 {
		return true
	}
	return peer.IsValid() && rs.isProxy(peer)
}

func (rs *Resolver) isProxy(ip netip.Addr) bool {
	for _, p := range rs.proxies {
		if p.Contains(ip) {
			return true
		}
	}
	return false
}

// fromHeader walks the header entries right to left and returns the first
// one that is not a known proxy. An unparsable entry stops the walk: what
// lies left of it was written by the caller.
func (rs *Resolver) fromHeader(values []string) string {
	items := strings.Split(strings.Join(values, ","), ",")

	var last netip.Addr
	for i := len(items) - 1; i >= 0; i-- {
		ip, ok := parseIP(items[i])
		if !ok {
			break
		}
		last = ip
		if !rs.isProxy(ip) {
			return ip.String()
		}
	}

	if last.IsValid() {
		return last.String()
	}
	return ""
}

func peerIP(remoteAddr string) netip.Addr {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	ip, _ := parseIP(host)
	return ip
}

// parseIP validates and normalizes an IP address string.
// IPv4-mapped IPv6 addresses are unmapped and zones are dropped.
func parseIP(s string) (netip.Addr, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return netip.Addr{}, false
	}

	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, false
	}

	return addr.Unmap().WithZone(""), true
}

func parsePrefix(s string) (netip.Prefix, error) {
	if strings.Contains(s, "/") {
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return netip.Prefix{}, err
		}
		return p.Masked(), nil
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, err
	}
	addr = addr.Unmap()
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}
