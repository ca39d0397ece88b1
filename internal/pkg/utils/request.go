package utils

import (
	"cataractcare-service/internal/pkg/dto/requests"
	"io"
	"net/http"
	"strings"
)

const (
	formFieldImage = "image"
	formFieldEye   = "eye"
	queryKeySearch = "search"
)

// GetSearchQuery returns the raw search term. It is deliberately not trimmed;
// the query engine decides what an empty term is.
func GetSearchQuery(r *http.Request) string {
	return r.URL.Query().Get(queryKeySearch)
}

func BuildUploadPatientImageRequest(r *http.Request, pid string) (*requests.UploadPatientImage, error) {
	request := &requests.UploadPatientImage{
		PID: pid,
		Eye: strings.TrimSpace(r.FormValue(formFieldEye)),
	}

	file, fileHeader, err := r.FormFile(formFieldImage)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	request.Data, err = io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	request.FileName = fileHeader.Filename
	request.ContentType = fileHeader.Header.Get("Content-Type")
	if request.ContentType == "" {
		request.ContentType = http.DetectContentType(request.Data)
	}
	request.Size = int64(len(request.Data))

	return request, nil
}
