package ai

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/googleapis/gax-go/v2/apierror"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
)

// classifyStatus maps an upstream HTTP status onto the package's sentinel errors,
// keeping the upstream error in the chain.
func classifyStatus(status int, err error) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	default:
		return err
	}
}

func anthropicStatus(err error) int {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func openAIStatus(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}

// googleStatus extracts an HTTP-equivalent status from errors returned by both
// the generative-ai client and the google.golang.org/api REST services.
func googleStatus(err error) int {
	// A bad API key comes back as 400 INVALID_ARGUMENT.
	msg := err.Error()
	if strings.Contains(msg, "API_KEY_INVALID") || strings.Contains(msg, "API key not valid") {
		return http.StatusUnauthorized
	}

	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return gErr.Code
	}

	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		if code := apiErr.HTTPCode(); code > 0 {
			return code
		}
		if st := apiErr.GRPCStatus(); st != nil {
			switch st.Code() {
			case codes.Unauthenticated:
				return http.StatusUnauthorized
			case codes.PermissionDenied:
				return http.StatusForbidden
			case codes.NotFound:
				return http.StatusNotFound
			case codes.ResourceExhausted:
				return http.StatusTooManyRequests
			case codes.Unavailable:
				return http.StatusServiceUnavailable
			}
		}
	}
	return 0
}
