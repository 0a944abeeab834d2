package response

import (
	"reflect"

	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON envelope. Count is populated
// only when the payload is a list.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Count     *int        `json:"count,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)

	resp := Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: idStr,
	}

	if data != nil {
		if v := reflect.ValueOf(data); v.Kind() == reflect.Slice {
			count := v.Len()
			resp.Count = &count
		}
	}

	c.JSON(code, resp)
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err interface{}) {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)

	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: idStr,
	})
}
