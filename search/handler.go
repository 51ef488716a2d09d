// Package search implements the lambda that proxies searches to the upstream
// api: it resolves the requested resource, fetches a bearer token, forwards
// the query and reshapes the returned records.
package search

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/prognoshealth/osusearch/lambdautils"
	"github.com/prognoshealth/osusearch/proxy"
	"github.com/prognoshealth/osusearch/secrets"
	"github.com/sirupsen/logrus"
)

// RecordFetcher performs the upstream request for a resource.
type RecordFetcher interface {
	Fetch(ctx context.Context, token string, resource string, q string) ([]json.RawMessage, error)
}

// Handler serves one invocation at a time. It holds no per-invocation state,
// so the same Handler is safe for concurrent invocations.
type Handler struct {
	Tokens  secrets.TokenProvider
	Records RecordFetcher
	Log     logrus.FieldLogger

	router *proxy.Router
}

// NewHandler returns a Handler using tokens for credentials and records for
// upstream requests.
func NewHandler(tokens secrets.TokenProvider, records RecordFetcher, log logrus.FieldLogger) *Handler {
	h := &Handler{
		Tokens:  tokens,
		Records: records,
		Log:     log,
	}

	router := &proxy.Router{}
	router.OPTIONS(".*", h.preflight)
	router.GET(".*", h.route)
	router.AddCatchAllHandler(h.catchAll)
	h.router = router

	return h
}

// Handle is the lambda entry point.
func (h *Handler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if !h.router.Valid() {
		return events.APIGatewayProxyResponse{}, h.router.BuildErrors()
	}

	return h.router.Route(ctx, request)
}

func (h *Handler) preflight(rctx *proxy.RouteContext) (events.APIGatewayProxyResponse, error) {
	return Preflight(), nil
}

func (h *Handler) route(rctx *proxy.RouteContext) (events.APIGatewayProxyResponse, error) {
	return h.Search(rctx.Context, rctx.Request.Path, rctx.Params["q"])
}

// catchAll treats any other method the same as GET.
func (h *Handler) catchAll(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return h.Search(ctx, request.Path, request.QueryStringParameters["q"])
}

// Search resolves path, fetches the token, forwards q upstream and returns the
// shaped records. Any failure is returned and no response is built.
func (h *Handler) Search(ctx context.Context, path string, q string) (events.APIGatewayProxyResponse, error) {
	meta := lambdautils.GetLambdaMetaData(ctx)
	resource := Resolve(path)

	log := h.log().WithFields(meta.Fields()).WithFields(logrus.Fields{
		"path":     path,
		"resource": resource.String(),
	})

	if resource == Unknown {
		log.Warn("path did not resolve, forwarding upstream as is")
	}

	token, err := h.Tokens.Token(ctx)
	if err != nil {
		log.WithError(err).Error("failed resolving upstream token")
		return events.APIGatewayProxyResponse{}, err
	}

	records, err := h.Records.Fetch(ctx, token, resource.Segment(), q)
	if err != nil {
		log.WithError(err).Error("upstream request failed")
		return events.APIGatewayProxyResponse{}, err
	}

	shaped, err := Shape(resource, records)
	if err != nil {
		log.WithError(err).Error("failed shaping upstream records")
		return events.APIGatewayProxyResponse{}, err
	}

	log.WithField("records", len(shaped)).Info("search complete")

	return Envelope(shaped)
}

func (h *Handler) log() logrus.FieldLogger {
	if h.Log != nil {
		return h.Log
	}

	return logrus.StandardLogger()
}
