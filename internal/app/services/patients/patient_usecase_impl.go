package patients

import (
	"bytes"
	"cataractcare-service/internal/app/config"
	"cataractcare-service/internal/app/contracts"
	"cataractcare-service/internal/pkg/constvars"
	"cataractcare-service/internal/pkg/dto/requests"
	"cataractcare-service/internal/pkg/dto/responses"
	"cataractcare-service/internal/pkg/exceptions"
	"cataractcare-service/internal/pkg/records"
	"cataractcare-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const reportContentType = "application/pdf"

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	LockerService     contracts.LockerService
	Storage           contracts.Storage
	EventPublisher    contracts.PatientEventPublisher
	ReportRenderer    contracts.PatientReportRenderer
	RosterExporter    contracts.PatientRosterExporter
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
	now               func() time.Time
}

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	lockerService contracts.LockerService,
	storage contracts.Storage,
	eventPublisher contracts.PatientEventPublisher,
	reportRenderer contracts.PatientReportRenderer,
	rosterExporter contracts.PatientRosterExporter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientRepository: patientRepository,
			LockerService:     lockerService,
			Storage:           storage,
			EventPublisher:    eventPublisher,
			ReportRenderer:    reportRenderer,
			RosterExporter:    rosterExporter,
			InternalConfig:    internalConfig,
			Log:               logger,
			now:               time.Now,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) FindByPID(ctx context.Context, pid string) (*responses.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.FindByPID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, pid),
	)

	raw, found, err := uc.PatientRepository.FindByPID(ctx, pid)
	if err != nil {
		uc.Log.Error("patientUsecase.FindByPID error fetching record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrPatientNotFound(nil, pid)
	}

	patient := presentPatient(records.Normalize(raw))
	return &patient, nil
}

// FindAll returns the presentable records matching search, in store order.
func (uc *patientUsecase) FindAll(ctx context.Context, search string) ([]responses.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchTermKey, search),
	)

	snapshot, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("patientUsecase.FindAll error fetching records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	selected := records.Presentable(records.Search(records.NormalizeAll(snapshot), search))
	result := make([]responses.Patient, 0, len(selected))
	for _, record := range selected {
		result = append(result, presentPatient(record))
	}

	uc.Log.Info("patientUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordsCountKey, len(snapshot)),
		zap.Int(constvars.LoggingResponseCountKey, len(result)),
	)
	return result, nil
}

// Intake writes a validated intake form under pid and stamps it with the
// current time. Images already on the record are kept when the form carries
// none.
func (uc *patientUsecase) Intake(ctx context.Context, pid string, request *requests.IntakePatient) (*responses.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.Intake called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, pid),
	)

	lock, err := uc.lockPatient(ctx, pid)
	if err != nil {
		return nil, err
	}
	defer lock.release(ctx)

	existing, found, err := uc.PatientRepository.FindByPID(ctx, pid)
	if err != nil {
		return nil, err
	}

	intake := records.PatientRecord{
		PID:                   pid,
		Name:                  request.Name,
		Age:                   request.Age,
		Sex:                   request.Sex,
		PhoneNumber:           request.PhoneNumber,
		Location:              request.Location,
		DOB:                   request.DOB,
		Address:               request.Address,
		BloodGroup:            request.BloodGroup,
		MedicalHistory:        request.MedicalHistory,
		VisionSymptoms:        request.VisionSymptoms,
		LeftEyeCataractTypes:  request.LeftEyeCataractTypes,
		RightEyeCataractTypes: request.RightEyeCataractTypes,
		GradeLeft:             request.GradeLeft,
		GradeRight:            request.GradeRight,
		ImageURLs:             request.ImageURLs,
		Timestamp:             utils.FormatTimestamp(uc.now()),
	}
	patch := intake.Raw()
	if len(request.ImageURLs) == 0 {
		delete(patch, records.FieldImageURLs)
	}

	err = uc.PatientRepository.Update(ctx, pid, patch)
	if err != nil {
		uc.Log.Error("patientUsecase.Intake error writing record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	event := constvars.PatientEventCreated
	if found {
		event = constvars.PatientEventUpdated
	}
	uc.publish(ctx, event, pid, sortedFields(patch))

	patient := presentPatient(records.Normalize(merge(existing, patch)))
	return &patient, nil
}

// Edit applies a partial update. Field names may use any known spelling;
// they are stored under the wire name. The pid itself cannot change.
func (uc *patientUsecase) Edit(ctx context.Context, pid string, request requests.EditPatient) (*responses.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.Edit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, pid),
	)

	if len(request) == 0 {
		return nil, exceptions.ErrPatientEmptyPatch(nil, pid)
	}

	patch := make(map[string]interface{}, len(request))
	for name, value := range request {
		field, ok := records.CanonicalField(name)
		if !ok {
			return nil, exceptions.ErrPatientUnknownField(nil, pid, name)
		}
		if field == records.FieldPID {
			if records.Normalize(map[string]interface{}{field: value}).PID != pid {
				return nil, exceptions.ErrPatientIDImmutable(nil, pid)
			}
			continue
		}
		patch[field] = value
	}
	if len(patch) == 0 {
		return nil, exceptions.ErrPatientEmptyPatch(nil, pid)
	}

	lock, err := uc.lockPatient(ctx, pid)
	if err != nil {
		return nil, err
	}
	defer lock.release(ctx)

	existing, found, err := uc.PatientRepository.FindByPID(ctx, pid)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrPatientNotFound(nil, pid)
	}

	record := records.Normalize(merge(existing, patch))
	if err := checkVocabularies(pid, record, patch); err != nil {
		return nil, err
	}

	canonical := record.Raw()
	changes := make(map[string]interface{}, len(patch))
	for field := range patch {
		changes[field] = canonical[field]
	}

	err = uc.PatientRepository.Update(ctx, pid, changes)
	if err != nil {
		uc.Log.Error("patientUsecase.Edit error writing record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	fields := sortedFields(changes)
	uc.publish(ctx, constvars.PatientEventUpdated, pid, fields)
	utils.LogBusinessEvent(uc.Log, "patient_record_edited", requestID,
		zap.String(constvars.LoggingPatientIDKey, pid),
		zap.Strings(constvars.LoggingFieldsKey, fields),
	)

	patient := presentPatient(record)
	return &patient, nil
}

// UploadImage stores an eye image and records its URL at the next free slot
// of the eye's parity in image_urls.
func (uc *patientUsecase) UploadImage(ctx context.Context, request *requests.UploadPatientImage) (*responses.PatientImages, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.UploadImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PID),
		zap.String(constvars.LoggingEyeKey, request.Eye),
		zap.Int64(constvars.LoggingBytesKey, request.Size),
	)

	eye, ok := records.ParseEye(request.Eye)
	if !ok {
		return nil, exceptions.ErrPatientInvalidEye(nil, request.Eye)
	}
	if err := uc.checkImage(request); err != nil {
		return nil, err
	}

	lock, err := uc.lockPatient(ctx, request.PID)
	if err != nil {
		return nil, err
	}
	defer lock.release(ctx)

	existing, found, err := uc.PatientRepository.FindByPID(ctx, request.PID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrPatientNotFound(nil, request.PID)
	}

	bucketName := uc.InternalConfig.Patient.MinioImageBucketName
	objectName := utils.GenerateImageObjectName(request.PID, string(eye), request.FileName)
	objectName, err = uc.Storage.UploadObject(ctx, bucketName, objectName, bytes.NewReader(request.Data), request.Size, request.ContentType)
	if err != nil {
		uc.Log.Error("patientUsecase.UploadImage error uploading object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, bucketName),
			zap.Error(err),
		)
		return nil, err
	}

	if err := lock.refresh(ctx); err != nil {
		return nil, err
	}

	record := records.Normalize(existing)
	record.ImageURLs = records.PlaceImage(record.ImageURLs, eye, uc.Storage.GetPublicObjectUrl(bucketName, objectName))

	err = uc.PatientRepository.Update(ctx, request.PID, map[string]interface{}{
		records.FieldImageURLs: record.Raw()[records.FieldImageURLs],
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, constvars.PatientEventImageAdded, request.PID, []string{records.FieldImageURLs})
	utils.LogBusinessEvent(uc.Log, "patient_image_uploaded", requestID,
		zap.String(constvars.LoggingPatientIDKey, request.PID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	return patientImages(request.PID, record), nil
}

func (uc *patientUsecase) FindImages(ctx context.Context, pid string) (*responses.PatientImages, error) {
	patient, err := uc.FindByPID(ctx, pid)
	if err != nil {
		return nil, err
	}
	return patientImages(pid, patient.PatientRecord), nil
}

func (uc *patientUsecase) RenderReport(ctx context.Context, pid string) ([]byte, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.RenderReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, pid),
	)

	patient, err := uc.FindByPID(ctx, pid)
	if err != nil {
		return nil, err
	}

	pdf, err := uc.ReportRenderer.Render(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.RenderReport error rendering report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return pdf, nil
}

// ArchiveReport renders the report, keeps a copy in object storage and
// hands back a presigned link to it.
func (uc *patientUsecase) ArchiveReport(ctx context.Context, pid string) (*responses.PatientReport, error) {
	requestID := utils.RequestIDFromContext(ctx)

	pdf, err := uc.RenderReport(ctx, pid)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	bucketName := uc.InternalConfig.Report.MinioBucketName
	objectName, err := uc.Storage.UploadObject(ctx, bucketName, utils.GenerateReportObjectName(pid, now), bytes.NewReader(pdf), int64(len(pdf)), reportContentType)
	if err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Report.MinioPreSignedUrlObjectExpiryTimeInHours) * time.Hour
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, expiry)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "patient_report_archived", requestID,
		zap.String(constvars.LoggingPatientIDKey, pid),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	return &responses.PatientReport{
		PID:        pid,
		ObjectName: objectName,
		URL:        url,
		ExpiresAt:  now.Add(expiry).UTC(),
	}, nil
}

func (uc *patientUsecase) ExportRoster(ctx context.Context, search string) ([]byte, error) {
	patients, err := uc.FindAll(ctx, search)
	if err != nil {
		return nil, err
	}
	return uc.RosterExporter.Export(patients)
}

// Import writes one record of a store export in canonical form. key is the
// key the export held the record under.
func (uc *patientUsecase) Import(ctx context.Context, key string, raw map[string]interface{}) error {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Debug("patientUsecase.Import called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, key),
	)

	record := records.Normalize(raw)
	err := uc.PatientRepository.Update(ctx, key, record.Raw())
	if err != nil {
		uc.Log.Error("patientUsecase.Import error writing record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, key),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *patientUsecase) Vocabularies(ctx context.Context) *responses.Vocabularies {
	return &responses.Vocabularies{
		MedicalHistory: append([]string{}, records.MedicalHistoryOptions...),
		VisionSymptoms: append([]string{}, records.VisionSymptomOptions...),
		CataractTypes:  append([]string{}, records.CataractTypeOptions...),
		Sex:            append([]string{}, records.SexOptions...),
	}
}

// patientLock is a held edit lock on one patient record.
type patientLock struct {
	uc    *patientUsecase
	pid   string
	key   string
	value string
	ttl   time.Duration
}

// lockPatient takes the edit lock of pid.
func (uc *patientUsecase) lockPatient(ctx context.Context, pid string) (*patientLock, error) {
	key := fmt.Sprintf(constvars.RedisKeyPatientEditLockFormat, pid)
	ttl := time.Duration(uc.InternalConfig.Patient.EditLockTTLInSeconds) * time.Second

	acquired, lockValue, err := uc.LockerService.TryLock(ctx, key, ttl)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrPatientLocked(nil, pid)
	}

	return &patientLock{uc: uc, pid: pid, key: key, value: lockValue, ttl: ttl}, nil
}

// refresh extends the lock for another full TTL. A lock that expired or
// changed hands reports the record as locked.
func (l *patientLock) refresh(ctx context.Context) error {
	if err := l.uc.LockerService.Refresh(ctx, l.key, l.value, l.ttl); err != nil {
		l.uc.Log.Warn("patientUsecase.lockPatient error refreshing lock",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingRedisKey, l.key),
			zap.Error(err),
		)
		return exceptions.ErrPatientLocked(err, l.pid)
	}
	return nil
}

func (l *patientLock) release(ctx context.Context) {
	if err := l.uc.LockerService.Unlock(context.WithoutCancel(ctx), l.key, l.value); err != nil {
		l.uc.Log.Warn("patientUsecase.lockPatient error releasing lock",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingRedisKey, l.key),
			zap.Error(err),
		)
	}
}

func (uc *patientUsecase) checkImage(request *requests.UploadPatientImage) error {
	maxSize := uc.InternalConfig.Patient.ImageMaxUploadSizeInMB * 1024 * 1024
	if request.Size <= 0 || int64(len(request.Data)) != request.Size {
		return exceptions.ErrImageValidation(errors.New("image is empty or truncated"))
	}
	if request.Size > maxSize {
		return exceptions.ErrImageValidation(fmt.Errorf("image is %d bytes, limit is %d", request.Size, maxSize))
	}
	if !strings.HasPrefix(request.ContentType, "image/") {
		return exceptions.ErrImageValidation(fmt.Errorf("content type %q is not an image", request.ContentType))
	}
	return nil
}

// publish sends a record event. The write it reports has already happened,
// so a failure is only logged.
func (uc *patientUsecase) publish(ctx context.Context, event, pid string, fields []string) {
	err := uc.EventPublisher.Publish(ctx, &requests.PatientRecordEvent{
		Event:      event,
		PID:        pid,
		Fields:     fields,
		OccurredAt: uc.now().UTC(),
	})
	if err != nil {
		uc.Log.Error("patientUsecase.publish error publishing event",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingEventKey, event),
			zap.String(constvars.LoggingPatientIDKey, pid),
			zap.Error(err),
		)
	}
}

func checkVocabularies(pid string, record records.PatientRecord, patch map[string]interface{}) error {
	checks := []struct {
		field string
		tags  []string
		valid func(string) bool
	}{
		{records.FieldMedicalHistory, record.MedicalHistory, records.IsMedicalHistory},
		{records.FieldVisionSymptoms, record.VisionSymptoms, records.IsVisionSymptom},
		{records.FieldLeftEyeCataractTypes, record.LeftEyeCataractTypes, records.IsCataractType},
		{records.FieldRightEyeCataractTypes, record.RightEyeCataractTypes, records.IsCataractType},
	}
	for _, check := range checks {
		if _, changed := patch[check.field]; !changed {
			continue
		}
		for _, tag := range check.tags {
			if !check.valid(tag) {
				return exceptions.ErrPatientInvalidTag(nil, pid, tag, check.field)
			}
		}
	}

	if _, changed := patch[records.FieldSex]; changed && record.Sex != "" && !records.IsSex(record.Sex) {
		return exceptions.ErrPatientInvalidTag(nil, pid, record.Sex, records.FieldSex)
	}
	return nil
}

func presentPatient(record records.PatientRecord) responses.Patient {
	return responses.Patient{
		PatientRecord: record,
		Grading: responses.PatientGrading{
			Left:  records.PresentGrade(record, records.EyeLeft),
			Right: records.PresentGrade(record, records.EyeRight),
		},
	}
}

func patientImages(pid string, record records.PatientRecord) *responses.PatientImages {
	left, right := records.EyeImages(record)
	return &responses.PatientImages{
		PID:   pid,
		Left:  left,
		Right: right,
	}
}

// merge overlays patch on base. A patched field drops its legacy spellings
// from the result so a null in the patch clears the field.
func merge(base, patch map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(base)+len(patch))
	for field, value := range base {
		merged[field] = value
	}
	for field, value := range patch {
		for _, alias := range records.FieldAliases(field) {
			delete(merged, alias)
		}
		merged[field] = value
	}
	return merged
}

func sortedFields(patch map[string]interface{}) []string {
	fields := make([]string, 0, len(patch))
	for field := range patch {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
