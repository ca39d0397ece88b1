package controllers

import (
	"cataractcare-service/internal/app/config"
	"cataractcare-service/internal/app/contracts"
	"cataractcare-service/internal/pkg/constvars"
	"cataractcare-service/internal/pkg/dto/requests"
	"cataractcare-service/internal/pkg/exceptions"
	"cataractcare-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const urlParamPID = "pid"

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	InternalConfig *config.InternalConfig
}

var (
	patientControllerInstance *PatientController
	oncePatientController     sync.Once
)

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, internalConfig *config.InternalConfig) *PatientController {
	oncePatientController.Do(func() {
		instance := &PatientController{
			Log:            logger,
			PatientUsecase: patientUsecase,
			InternalConfig: internalConfig,
		}
		patientControllerInstance = instance
	})
	return patientControllerInstance
}

func (ctrl *PatientController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PatientController.FindAll requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	search := utils.GetSearchQuery(r)
	ctrl.Log.Info("PatientController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchTermKey, search),
	)

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.PatientUsecase.FindAll(ctx, search)
	if err != nil {
		ctrl.usecaseError(w, "PatientController.FindAll", requestID, err)
		return
	}

	ctrl.Log.Info("PatientController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(result)),
	)
	utils.BuildSuccessResponseWithCount(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage, len(result), result)
}

func (ctrl *PatientController) ExportRoster(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PatientController.ExportRoster requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	search := utils.GetSearchQuery(r)

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	data, err := ctrl.PatientUsecase.ExportRoster(ctx, search)
	if err != nil {
		ctrl.usecaseError(w, "PatientController.ExportRoster", requestID, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "patient_roster_exported", requestID,
		zap.String(constvars.LoggingSearchTermKey, search),
		zap.Int(constvars.LoggingBytesKey, len(data)),
	)
	utils.BuildFileResponse(w, constvars.MIMEApplicationXLSX, constvars.PatientRosterFileName, data)
}

func (ctrl *PatientController) FindByPID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PatientController.FindByPID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	pid, err := ctrl.pidParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.PatientUsecase.FindByPID(ctx, pid)
	if err != nil {
		ctrl.usecaseError(w, "PatientController.FindByPID", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccessMessage, result)
}

// Intake handles the intake form: the whole record is submitted and
// validated at once.
func (ctrl *PatientController) Intake(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PatientController.Intake requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	pid, err := ctrl.pidParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.IntakePatient)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		ctrl.Log.Error("PatientController.Intake error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	request.Sanitize()
	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Info("PatientController.Intake validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.PatientUsecase.Intake(ctx, pid, request)
	if err != nil {
		ctrl.usecaseError(w, "PatientController.Intake", requestID, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "patient_record_submitted", requestID,
		zap.String(constvars.LoggingPatientIDKey, pid),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CreatePatientSuccessMessage, result)
}

func (ctrl *PatientController) Edit(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PatientController.Edit requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	pid, err := ctrl.pidParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	var request requests.EditPatient
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		ctrl.Log.Error("PatientController.Edit error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.PatientUsecase.Edit(ctx, pid, request)
	if err != nil {
		ctrl.usecaseError(w, "PatientController.Edit", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePatientSuccessMessage, result)
}

func (ctrl *PatientController) UploadImage(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PatientController.UploadImage requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	pid, err := ctrl.pidParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = r.ParseMultipartForm(ctrl.InternalConfig.Patient.ImageMaxUploadSizeInMB << 20)
	if err != nil {
		ctrl.Log.Error("PatientController.UploadImage error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request, err := utils.BuildUploadPatientImageRequest(r, pid)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.PatientUsecase.UploadImage(ctx, request)
	if err != nil {
		ctrl.usecaseError(w, "PatientController.UploadImage", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadPatientImageSuccessMessage, result)
}

func (ctrl *PatientController) FindImages(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PatientController.FindImages requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	pid, err := ctrl.pidParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.PatientUsecase.FindImages(ctx, pid)
	if err != nil {
		ctrl.usecaseError(w, "PatientController.FindImages", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientImagesSuccessMessage, result)
}

// DownloadReport streams the PDF report as patient_report_<pid>.pdf.
func (ctrl *PatientController) DownloadReport(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PatientController.DownloadReport requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	pid, err := ctrl.pidParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.reportContext(r)
	defer cancel()

	pdf, err := ctrl.PatientUsecase.RenderReport(ctx, pid)
	if err != nil {
		ctrl.usecaseError(w, "PatientController.DownloadReport", requestID, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "patient_report_downloaded", requestID,
		zap.String(constvars.LoggingPatientIDKey, pid),
		zap.Int(constvars.LoggingBytesKey, len(pdf)),
	)
	utils.BuildFileResponse(w, constvars.MIMEApplicationPDF, utils.GenerateReportFileName(pid), pdf)
}

func (ctrl *PatientController) ArchiveReport(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PatientController.ArchiveReport requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	pid, err := ctrl.pidParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.reportContext(r)
	defer cancel()

	result, err := ctrl.PatientUsecase.ArchiveReport(ctx, pid)
	if err != nil {
		ctrl.usecaseError(w, "PatientController.ArchiveReport", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ArchivePatientReportSuccessMessage, result)
}

func (ctrl *PatientController) pidParam(r *http.Request) (string, error) {
	pid := chi.URLParam(r, urlParamPID)
	err := utils.ValidateVar(pid, "required,patient_id")
	if err != nil {
		return "", exceptions.ErrURLParamIDValidation(err, urlParamPID)
	}
	return pid, nil
}

func (ctrl *PatientController) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds)*time.Second)
}

// reportContext allows for the headless browser on top of the usual budget.
func (ctrl *PatientController) reportContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := ctrl.InternalConfig.App.RequestTimeoutInSeconds + ctrl.InternalConfig.Report.RenderTimeoutInSeconds
	return context.WithTimeout(r.Context(), time.Duration(timeout)*time.Second)
}

func (ctrl *PatientController) usecaseError(w http.ResponseWriter, caller, requestID string, err error) {
	ctrl.Log.Error(caller+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
