// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorCode is a machine readable error code returned in error responses.
type ErrorCode string

const (
	// ErrorCodeNotFound is returned for unknown routes.
	ErrorCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrorCodeNoFortunes is returned when the data directory holds no
	// fortunes.
	ErrorCodeNoFortunes ErrorCode = "NO_FORTUNES"

	// ErrorCodeInternalError is returned when fortunes can't be read.
	ErrorCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// APIError is the body of an error response.
type APIError struct {
	Error     string    `json:"error"`
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// SendError aborts the request with a JSON error response.
func SendError(c *gin.Context, status int, code ErrorCode, message string) {
	c.AbortWithStatusJSON(status, &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
		RequestID: c.GetString(requestIDKey),
	})
}
