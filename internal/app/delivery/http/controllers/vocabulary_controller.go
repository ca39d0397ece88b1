package controllers

import (
	"cataractcare-service/internal/app/contracts"
	"cataractcare-service/internal/pkg/constvars"
	"cataractcare-service/internal/pkg/exceptions"
	"cataractcare-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type VocabularyController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
}

var (
	vocabularyControllerInstance *VocabularyController
	onceVocabularyController     sync.Once
)

func NewVocabularyController(logger *zap.Logger, patientUsecase contracts.PatientUsecase) *VocabularyController {
	onceVocabularyController.Do(func() {
		vocabularyControllerInstance = &VocabularyController{
			Log:            logger,
			PatientUsecase: patientUsecase,
		}
	})
	return vocabularyControllerInstance
}

// FindAll lists the closed vocabularies the intake and edit forms offer.
func (ctrl *VocabularyController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("VocabularyController.FindAll requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	result := ctrl.PatientUsecase.Vocabularies(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetVocabulariesSuccessMessage, result)
}
