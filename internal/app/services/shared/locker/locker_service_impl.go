package locker

import (
	"cataractcare-service/internal/app/contracts"
	"cataractcare-service/internal/pkg/constvars"
	"cataractcare-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	lockerServiceInstance contracts.LockerService
	onceLockerService     sync.Once
)

var errLockNotOwned = errors.New("lock not owned by this client")

type lockService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

func NewLockService(repo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	onceLockerService.Do(func() {
		instance := &lockService{
			redisRepo: repo,
			Log:       logger,
		}
		lockerServiceInstance = instance
	})
	return lockerServiceInstance
}

func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("lockService.TryLock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.Duration(constvars.LoggingLockExpirationTimeKey, expiration),
	)

	lockValue := uuid.NewString()
	acquired, err := s.redisRepo.TrySetNX(ctx, key, lockValue, expiration)
	if err != nil {
		s.Log.Error("lockService.TryLock error calling redisRepo.TrySetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, "", err
	}

	if !acquired {
		s.Log.Info("lockService.TryLock not acquired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return false, "", nil
	}

	s.Log.Info("lockService.TryLock acquired lock",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.String(constvars.LoggingLockValueKey, lockValue),
	)
	return true, lockValue, nil
}

func (s *lockService) Unlock(ctx context.Context, key, lockValue string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("lockService.Unlock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.String(constvars.LoggingLockValueKey, lockValue),
	)

	owned, err := s.owns(ctx, key, lockValue)
	if err != nil {
		return err
	}
	if !owned {
		return nil
	}

	err = s.redisRepo.Delete(ctx, key)
	if err != nil {
		s.Log.Error("lockService.Unlock error deleting lock from redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	s.Log.Info("lockService.Unlock succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
	)
	return nil
}

func (s *lockService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	owned, err := s.owns(ctx, key, lockValue)
	if err != nil {
		return err
	}
	if !owned {
		return exceptions.ErrRedisUnlock(fmt.Errorf("refresh of %s: %w", key, errLockNotOwned))
	}

	err = s.redisRepo.Expire(ctx, key, expiration)
	if err != nil {
		s.Log.Error("lockService.Refresh error extending lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// owns reports false without error when the lock is already gone, and an
// error when someone else holds it.
func (s *lockService) owns(ctx context.Context, key, lockValue string) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	storedVal, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		s.Log.Error("lockService.owns error retrieving value from redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, err
	}

	if storedVal == "" {
		s.Log.Info("lockService.owns no lock found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return false, nil
	}

	expectedValue := fmt.Sprintf("%q", lockValue)
	if storedVal != expectedValue {
		err := exceptions.ErrRedisUnlock(errLockNotOwned)
		s.Log.Error("lockService.owns lock ownership mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockStoredValueKey, storedVal),
			zap.String(constvars.LoggingLockExpectedValueKey, expectedValue),
			zap.Error(err),
		)
		return false, err
	}
	return true, nil
}
