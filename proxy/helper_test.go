package proxy

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
)

func testHandler(context *RouteContext) (events.APIGatewayProxyResponse, error) {
	return events.APIGatewayProxyResponse{StatusCode: 200}, nil
}

func testRequest(method HttpMethod, path string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		Path:       path,
		HTTPMethod: method.String(),
		Headers:    map[string]string{},
	}
}

func dummyAPIGatewayProxyRequest(category string) events.APIGatewayProxyRequest {
	file := fmt.Sprintf("testdata/request.%s.json", category)

	content, err := os.ReadFile(file)
	if err != nil {
		log.Fatal(err)
	}

	request := events.APIGatewayProxyRequest{}
	if err := json.Unmarshal(content, &request); err != nil {
		log.Fatal(err)
	}

	return request
}
