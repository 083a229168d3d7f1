package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/kfly8/muxbuilder"
)

const unknownIP = "0.0.0.0"

// IANA defined IPv4 non-public ranges
var privateBlocks = func() []*net.IPNet {
	var blocks []*net.IPNet
	for _, cidr := range []string{
		"10.0.0.0/8",
		"100.64.0.0/10",
		"172.16.0.0/12",
		"192.0.0.0/24",
		"192.168.0.0/16",
		"198.18.0.0/15",
	} {
		_, block, err := net.ParseCIDR(cidr)
		if err != nil {
			panic(err)
		}
		blocks = append(blocks, block)
	}
	return blocks
}()

// InjectIPAddress grabs the IP address of the client
// and promotes it to *http.Request.Context under muxbuilder.IpAddrKey.
func InjectIPAddress() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), muxbuilder.IpAddrKey, ClientIP(r))
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientIP is GetIPAddress falling back to the host part of *http.Request.RemoteAddr.
func ClientIP(r *http.Request) string {
	if ip := GetIPAddress(r.Header); ip != unknownIP {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || net.ParseIP(host) == nil {
		return unknownIP
	}

	return host
}

// GetIPAddress parses "X-Forwarded-For" and "X-Real-Ip" headers for the IP address
// from the request.
//
// GetIPAddress skips addresses from non-public ranges.
func GetIPAddress(hm http.Header) string {
	for _, h := range []string{"X-Forwarded-For", "X-Real-Ip"} {
		addresses := strings.Split(hm.Get(h), ",")
		// march from right to left until we get a public address
		// that will be the address right before our proxy.
		for i := len(addresses) - 1; i >= 0; i-- {
			ip := strings.TrimSpace(addresses[i])
			parsed := net.ParseIP(ip)
			if !parsed.IsGlobalUnicast() || isPrivate(parsed) {
				continue
			}
			return ip
		}
	}
	return unknownIP
}

// isPrivate checks whether the IPv4 address is in a private block.
func isPrivate(ip net.IP) bool {
	if ip.To4() == nil {
		return false
	}

	for _, block := range privateBlocks {
		if block.Contains(ip) {
			return true
		}
	}
	return false
}
