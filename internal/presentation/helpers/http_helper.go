package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	presentationProtocols "github.com/trackify/trackify-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateResponse marshals body as JSON into an HttpResponse.
func CreateResponse(body any, statusCode int) *presentationProtocols.HttpResponse {
	encoded, err := json.Marshal(body)
	if err != nil {
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"error":"error encoding response"}`))),
			StatusCode: http.StatusInternalServerError,
		}
	}

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(encoded)),
		StatusCode: statusCode,
	}
}

// CreateFileResponse wraps a raw blob with download headers.
func CreateFileResponse(data []byte, contentType string, filename string) *presentationProtocols.HttpResponse {
	header := http.Header{}
	header.Set("Content-Type", contentType)
	header.Set("Content-Disposition", "attachment; filename="+filename)

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(data)),
		Header:     header,
		StatusCode: http.StatusOK,
	}
}

// GetUserIdFromRequest reads the UserId header set by the authentication
// middleware. The second return value carries a ready error response when the
// header is missing or malformed.
func GetUserIdFromRequest(r presentationProtocols.HttpRequest) (primitive.ObjectID, *presentationProtocols.HttpResponse) {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return primitive.NilObjectID, CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user id",
		}, http.StatusUnauthorized)
	}

	return userId, nil
}
