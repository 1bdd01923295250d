package service

import (
	"context"

	"jobboard/internal/domain"
	"jobboard/pkg/cache"
	"jobboard/pkg/logger"
)

// CachedJobService wraps JobService with caching functionality.
// Only the unrestricted read paths (seeker and admin callers) go through the
// cache; employer reads are ownership-scoped and always hit the inner service
// so that the cache can never widen what a caller may see.
type CachedJobService struct {
	jobService   domain.JobService
	cache        cache.Cache
	cacheManager cache.CacheStrategy
	logger       logger.Logger
}

// NewCachedJobService creates a new cached job service
func NewCachedJobService(
	jobService domain.JobService,
	cacheInstance cache.Cache,
	cacheManager cache.CacheStrategy,
	logger logger.Logger,
) domain.JobService {
	return &CachedJobService{
		jobService:   jobService,
		cache:        cacheInstance,
		cacheManager: cacheManager,
		logger:       logger,
	}
}

// cacheable reports whether the caller sees the shared, unscoped job data.
func (s *CachedJobService) cacheable(caller *domain.User) bool {
	if caller == nil {
		return false
	}
	return caller.Role == domain.RoleSeeker || caller.Role == domain.RoleAdmin
}

func (s *CachedJobService) ListJobs(caller *domain.User) ([]*domain.Job, error) {
	if !s.cacheable(caller) {
		return s.jobService.ListJobs(caller)
	}

	ctx := context.Background()
	key := cache.JobListCacheKey()

	var jobs []*domain.Job
	err := s.cacheManager.ReadThrough(ctx, key, &jobs, func() (interface{}, error) {
		return s.jobService.ListJobs(caller)
	}, cache.ShortExpiration)

	if err != nil {
		s.logger.Error("Cache read-through error for job list", map[string]interface{}{
			"error": err.Error(),
		})
		// Fallback to direct service call
		return s.jobService.ListJobs(caller)
	}

	return jobs, nil
}

func (s *CachedJobService) GetJob(caller *domain.User, id int64) (*domain.Job, error) {
	if !s.cacheable(caller) {
		return s.jobService.GetJob(caller, id)
	}

	ctx := context.Background()
	key := cache.JobCacheKey(id)

	var job *domain.Job
	err := s.cacheManager.ReadThrough(ctx, key, &job, func() (interface{}, error) {
		return s.jobService.GetJob(caller, id)
	}, cache.MediumExpiration)

	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, err
		}
		s.logger.Error("Cache read-through error for job by ID", map[string]interface{}{
			"jobID": id,
			"error": err.Error(),
		})
		return s.jobService.GetJob(caller, id)
	}

	return job, nil
}

func (s *CachedJobService) CreateJob(caller *domain.User, input domain.JobInput) (*domain.Job, error) {
	job, err := s.jobService.CreateJob(caller, input)
	if err != nil {
		return nil, err
	}

	s.invalidateLists(job.EmployerID)
	return job, nil
}

func (s *CachedJobService) UpdateJob(caller *domain.User, id int64, patch domain.JobPatch) (*domain.Job, error) {
	job, err := s.jobService.UpdateJob(caller, id, patch)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if delErr := s.cache.Delete(ctx, cache.JobCacheKey(id)); delErr != nil {
		s.logger.Error("Error invalidating job cache", map[string]interface{}{
			"jobID": id,
			"error": delErr.Error(),
		})
	}
	s.invalidateLists(job.EmployerID)

	return job, nil
}

func (s *CachedJobService) DeleteJob(caller *domain.User, id int64) error {
	// Resolve the owning employer before the row disappears.
	var employerID int64
	if job, err := s.jobService.GetJob(caller, id); err == nil {
		employerID = job.EmployerID
	}

	if err := s.jobService.DeleteJob(caller, id); err != nil {
		return err
	}

	ctx := context.Background()
	if delErr := s.cache.Delete(ctx, cache.JobCacheKey(id)); delErr != nil {
		s.logger.Error("Error invalidating job cache", map[string]interface{}{
			"jobID": id,
			"error": delErr.Error(),
		})
	}
	s.invalidateLists(employerID)

	return nil
}

// invalidateLists drops the shared job list and, when known, the owning
// employer's scoped list.
func (s *CachedJobService) invalidateLists(employerID int64) {
	ctx := context.Background()

	if err := s.cache.Delete(ctx, cache.JobListCacheKey()); err != nil {
		s.logger.Error("Error invalidating job list cache", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if employerID != 0 {
		if err := s.cache.Delete(ctx, cache.JobListByEmployerCacheKey(employerID)); err != nil {
			s.logger.Error("Error invalidating employer job list cache", map[string]interface{}{
				"employerID": employerID,
				"error":      err.Error(),
			})
		}
	}
}
