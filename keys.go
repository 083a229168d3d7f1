package muxbuilder

// A Key namespaces values muxbuilder stashes in a context.Context.
type Key string

const (
	// IpAddrKey stashes the IP address of an HTTP request.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"

	// RouterKey stashes the router serving an HTTP request.
	RouterKey Key = "RouterKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "muxbuilder context key: " + string(k)
}
