package search

// Resource is the upstream collection a request is forwarded to.
type Resource int

const (
	Unknown Resource = iota
	Locations
	Directory
)

// unknownSegment is sent upstream when the path did not resolve.
const unknownSegment = "null"

// Resolve maps an inbound path to a Resource. Matching is exact and case
// sensitive; "/locations/" and "/Locations" are both Unknown.
func Resolve(path string) Resource {
	switch path {
	case "/locations":
		return Locations
	case "/people":
		return Directory
	default:
		return Unknown
	}
}

// Segment returns the upstream path segment for the resource.
func (r Resource) Segment() string {
	switch r {
	case Locations:
		return "locations"
	case Directory:
		return "directory"
	default:
		return unknownSegment
	}
}

// String returns the resource name for logging.
func (r Resource) String() string {
	switch r {
	case Locations:
		return "Locations"
	case Directory:
		return "Directory"
	default:
		return "Unknown"
	}
}
