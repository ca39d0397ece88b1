package report

import (
	"cataractcare-service/internal/app/contracts"
	"cataractcare-service/internal/pkg/constvars"
	"cataractcare-service/internal/pkg/dto/responses"
	"cataractcare-service/internal/pkg/exceptions"
	"context"
	"encoding/base64"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// A4 in inches, the unit PrintToPDF expects.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

type patientReportRenderer struct {
	allocCtx context.Context
	log      *zap.Logger
	timeout  time.Duration
}

// NewPatientReportRenderer prints reports with the headless Chrome behind
// allocCtx (see drivers/browser). Each render opens and closes its own tab.
func NewPatientReportRenderer(allocCtx context.Context, log *zap.Logger, timeout time.Duration) contracts.PatientReportRenderer {
	return &patientReportRenderer{
		allocCtx: allocCtx,
		log:      log,
		timeout:  timeout,
	}
}

func (r *patientReportRenderer) Render(ctx context.Context, patient *responses.Patient) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.log.Info("patientReportRenderer.Render called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.PID),
	)

	html, err := BuildPatientReportHTML(patient)
	if err != nil {
		r.log.Error("patientReportRenderer.Render error building HTML",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	tabCtx, cancelTab := chromedp.NewContext(r.allocCtx)
	defer cancelTab()
	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, r.timeout)
	defer cancelTimeout()

	// The tab lives under the allocator, not the request; stop it when the
	// request goes away.
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	var pdf []byte
	err = chromedp.Run(tabCtx,
		chromedp.Navigate("data:text/html;base64,"+base64.StdEncoding.EncodeToString(html)),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		r.log.Error("patientReportRenderer.Render error printing PDF",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrChromePrintToPDF(err)
	}

	r.log.Info("patientReportRenderer.Render succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBytesKey, len(pdf)),
	)
	return pdf, nil
}
