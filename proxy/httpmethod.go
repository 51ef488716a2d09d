package proxy

// HttpMethod is an enum of the standard Http Methods.
type HttpMethod int

const (
	GET HttpMethod = iota
	HEAD
	POST
	PUT
	DELETE
	CONNECT
	OPTIONS
	TRACE
	PATCH
)

var httpMethodNames = [...]string{"GET", "HEAD", "POST", "PUT", "DELETE", "CONNECT", "OPTIONS", "TRACE", "PATCH"}

// String returns the method as it appears in a request.
func (m HttpMethod) String() string {
	if m < 0 || int(m) >= len(httpMethodNames) {
		return "UNKNOWN"
	}

	return httpMethodNames[m]
}
