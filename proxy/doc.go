// Package proxy provides a minimal router for aws lambda functions that act as
// aws api gateway rest (v1) proxy integrations. Requests and responses flow
// through the lambda as events.APIGatewayProxyRequest and
// events.APIGatewayProxyResponse.
//
// The router is designed to be as simplistic as possible and is not feature
// rich.
package proxy
