package proxy

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
)

// RouteContext contains all the request information for a route when matched.
//
// Params merges the named regex groups of the route, the api gateway path
// parameters and the query string parameters, in that order of precedence
// from lowest to highest. A query string value is never overridden.
type RouteContext struct {
	Context context.Context
	Request events.APIGatewayProxyRequest
	Params  map[string]string
}
