package constvars

const (
	MethodGet     = "GET"
	MethodHead    = "HEAD"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodOptions = "OPTIONS"
)

const (
	MIMETextHTML            = "text/html"
	MIMETextPlain           = "text/plain"
	MIMEApplicationJSON     = "application/json"
	MIMEApplicationPDF      = "application/pdf"
	MIMEApplicationXLSX     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMEOctetStream         = "application/octet-stream"
	MIMEMultipartForm       = "multipart/form-data"
	MIMETextHTMLCharsetUTF8 = "text/html; charset=utf-8"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusNoContent           = 204
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusRequestTimeout      = 408
	StatusConflict            = 409
	StatusRequestEntityTooBig = 413
	StatusUnprocessableEntity = 422
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAccept             = "Accept"
	HeaderAuthorization      = "Authorization"
	HeaderContentType        = "Content-Type"
	HeaderContentDisposition = "Content-Disposition"
	HeaderContentLength      = "Content-Length"
	HeaderXRequestID         = "X-Request-ID"
	HeaderXCSRFToken         = "X-CSRF-Token"
	HeaderLink               = "Link"
)
