package lambdautils

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LambdaMetaData stored details about the current lambda context.
type LambdaMetaData struct {
	FunctionName    string
	FunctionVersion string
	LogGroupName    string
	LogStreamName   string
	MemoryLimitInMB int
	Context         *lambdacontext.LambdaContext

	requestID string
}

// GetLambdaMetaData returns MetaData extracted from the current lambda context.
//
// Outside of lambda (local runs, tests) there is no invocation context and a
// random request id is generated instead.
func GetLambdaMetaData(ctx context.Context) LambdaMetaData {
	lm := LambdaMetaData{
		FunctionName:    lambdacontext.FunctionName,
		FunctionVersion: lambdacontext.FunctionVersion,
		LogGroupName:    lambdacontext.LogGroupName,
		LogStreamName:   lambdacontext.LogStreamName,
		MemoryLimitInMB: lambdacontext.MemoryLimitInMB,
	}

	lm.Context, _ = lambdacontext.FromContext(ctx)

	if lm.Context != nil && lm.Context.AwsRequestID != "" {
		lm.requestID = lm.Context.AwsRequestID
	} else {
		lm.requestID = uuid.New().String()
	}

	return lm
}

// RequestID returns the id of the current invocation.
func (lm LambdaMetaData) RequestID() string {
	return lm.requestID
}

// Fields returns the metadata as log fields.
func (lm LambdaMetaData) Fields() logrus.Fields {
	fields := logrus.Fields{
		"request_id": lm.RequestID(),
	}

	if lm.FunctionName != "" {
		fields["function_name"] = lm.FunctionName
		fields["function_version"] = lm.FunctionVersion
	}

	return fields
}
