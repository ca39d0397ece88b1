package utils

import (
	"cataractcare-service/internal/pkg/constvars"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateImageObjectName builds the storage key of an eye image, keeping the
// uploaded file's extension.
func GenerateImageObjectName(pid, eye, fileName string) string {
	extension := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf(constvars.PatientImageObjectNameFormat, pid, eye, uuid.NewString(), extension)
}

func GenerateReportObjectName(pid string, now time.Time) string {
	return fmt.Sprintf(constvars.PatientReportObjectNameFormat, pid, now.UTC().Format("20060102_150405"))
}

func GenerateReportFileName(pid string) string {
	return fmt.Sprintf(constvars.PatientReportFileNameFormat, pid)
}

// FormatTimestamp renders t the way intake timestamps are stored.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(constvars.TimestampLayout)
}
