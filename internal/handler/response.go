package handler

import (
	"github.com/aws/aws-lambda-go/events"
)

const (
	msgRequestNotSet   = "request is not set"
	msgPostOnly        = "Only POST method is supported"
	msgNoPrompt        = "No prompt found. A prompt must be provided to process the request"
	msgUploaded        = "Image uploaded to target bucket"
	msgUploadFailed    = "Error uploading image to target bucket"
	contentTypeHeader  = "Content-Type"
	contentTypeJSON    = "application/json"
	allowOriginHeader  = "Access-Control-Allow-Origin"
	allowHeadersHeader = "Access-Control-Allow-Headers"
	allowMethodsHeader = "Access-Control-Allow-Methods"
)

// NewResponse wraps message in the fixed CORS envelope. The body is sent as
// is, not JSON encoded, even though the content type says otherwise.
func NewResponse(statusCode int, message string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			contentTypeHeader:  contentTypeJSON,
			allowOriginHeader:  "*",
			allowHeadersHeader: "*",
			allowMethodsHeader: "*",
		},
		Body: message,
	}
}
