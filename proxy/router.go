package proxy

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

// CatchAllHandler defines the function interface the router uses to handle any
// request that doesn't match a route.
type CatchAllHandler func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Router routes an incoming events.APIGatewayProxyRequest to the first route
// that matches it, in the order routes were added.
//
// Requests that match no route go to CatchAll when set. Errors returned by a
// route are returned as is.
//
// Example:
//
//	func handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
//		router := &proxy.Router{}
//		router.GET("/locations", locationsHandler)
//		router.OPTIONS(".*", preflightHandler)
//
//		if !router.Valid() {
//			return events.APIGatewayProxyResponse{}, router.BuildErrors()
//		}
//
//		return router.Route(ctx, request)
//	}
type Router struct {
	Routes   []*Route
	CatchAll CatchAllHandler

	errors []error
}

// Valid returns true if the routers' routes have all been built successfully.
// Otherwise false.
func (router *Router) Valid() bool {
	return len(router.errors) == 0
}

// AddRoute appends route to the list of routes used for request matching.
func (router *Router) AddRoute(route *Route) {
	router.Routes = append(router.Routes, route)
}

// AddBuildError appends an error to the list of router errors.
func (router *Router) AddBuildError(err error) {
	router.errors = append(router.errors, err)
}

// BuildErrors returns a single error that encapsulates all the route errors
// found during router construction.
func (router *Router) BuildErrors() error {
	topError := errors.New("failed building router")

	for _, err := range router.errors {
		topError = errors.Wrap(topError, err.Error())
	}

	return topError
}

// AddRouteIfNoError appends the provided route if no error is present.
// Otherwise it adds the error to the build errors.
func (router *Router) AddRouteIfNoError(route *Route, err error) {
	if err != nil {
		router.AddBuildError(err)
	} else {
		router.AddRoute(route)
	}
}

// GET adds a new GET route with the specified pattern match and handler.
func (router *Router) GET(match string, handler RouteHandler) {
	router.AddRouteIfNoError(NewRoute(GET, match, handler))
}

// OPTIONS adds a new OPTIONS route with the specified pattern match and handler.
func (router *Router) OPTIONS(match string, handler RouteHandler) {
	router.AddRouteIfNoError(NewRoute(OPTIONS, match, handler))
}

// AddCatchAllHandler attaches a catchall handler to the router.
func (router *Router) AddCatchAllHandler(handler CatchAllHandler) {
	router.CatchAll = handler
}

// Route executes the first matching route, falling back to the catch all
// handler. Without a catch all an unmatched request is an error.
func (router *Router) Route(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	for _, route := range router.Routes {
		matched, groups := route.IsMatch(request)

		if !matched {
			continue
		}

		return route.Follow(ctx, request, groups)
	}

	if router.CatchAll != nil {
		return router.CatchAll(ctx, request)
	}

	return events.APIGatewayProxyResponse{}, fmt.Errorf("'%s %s' not found", request.HTTPMethod, request.Path)
}

