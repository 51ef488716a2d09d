package search

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

// Envelope wraps the shaped records in the response returned to api gateway.
// It only ever produces a 200; failures abort the invocation before this.
func Envelope(records []interface{}) (events.APIGatewayProxyResponse, error) {
	if records == nil {
		records = []interface{}{}
	}

	body, err := json.Marshal(records)
	if err != nil {
		return events.APIGatewayProxyResponse{}, errors.Wrap(err, "failed to marshal response body")
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Access-Control-Allow-Origin": "*",
			"Content-Type":                "application/json",
		},
		Body:            string(body),
		IsBase64Encoded: false,
	}, nil
}

// Preflight answers a cors preflight request.
func Preflight() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusNoContent,
		Headers: map[string]string{
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": "GET, OPTIONS",
			"Access-Control-Allow-Headers": "Content-Type, Authorization",
		},
	}
}
