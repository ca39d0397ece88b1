package utils

import (
	"cataractcare-service/internal/pkg/constvars"
	"cataractcare-service/internal/pkg/dto/responses"
	"cataractcare-service/internal/pkg/exceptions"
	"fmt"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildSuccessResponseWithCount(w http.ResponseWriter, code int, message string, count int, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
		Count:   &count,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// BuildFileResponse writes data as a downloadable attachment.
func BuildFileResponse(w http.ResponseWriter, contentType, fileName string, data []byte) {
	w.Header().Set(constvars.HeaderContentType, contentType)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set(constvars.HeaderContentLength, strconv.Itoa(len(data)))
	w.WriteHeader(constvars.StatusOK)
	w.Write(data)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	customErr, ok := exceptions.AsCustomError(err)
	if ok {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		location := map[string]interface{}{
			"file":          customErr.Location.File,
			"line":          customErr.Location.Line,
			"function_name": customErr.Location.FunctionName,
		}
		log.Error(customErr.DevMessage,
			zap.Any("location", location),
		)
	} else {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := errorResponse{
		StatusCode: code,
		Success:    false,
		Message:    clientMessage,
	}

	appEnvironment := GetEnvString("APP_ENV", constvars.AppEnvDevelopment)
	if customErr != nil && appEnvironment != constvars.AppEnvProduction {
		response.DevMessage = customErr.DevMessage
	}
	json.NewEncoder(w).Encode(response)
}

type errorResponse struct {
	StatusCode int    `json:"status_code"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	DevMessage string `json:"dev_message,omitempty"`
}
