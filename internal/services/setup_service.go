package services

import (
	"context"
	"fmt"
	"net/http"

	"eduhub/internal/apis/dtos"
	"eduhub/internal/apperrors"
	"eduhub/internal/constants"
	"eduhub/internal/repositories"
	"eduhub/internal/schema"
	"eduhub/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
)

type SetupService interface {
	// Reset drops every user collection and flushes the course read cache.
	Reset(ctx context.Context) ([]string, uint, error)
	// Provision creates each collection from the validator file, in file order,
	// then its secondary indexes. It stops at the first failure.
	Provision(ctx context.Context) ([]string, uint, error)
	// Seed inserts the sample data collection by collection.
	Seed(ctx context.Context) (*dtos.SeedReport, uint, error)
	Run(ctx context.Context, seed bool) (*dtos.SetupResponse, uint, error)
}

type setupService struct {
	collectionRepo repositories.CollectionRepository
	cacheRepo      repositories.CacheRepository
	schemaPath     string
	sampleDataPath string
	log            *logger.Logger
}

func NewSetupService(
	collectionRepo repositories.CollectionRepository,
	cacheRepo repositories.CacheRepository,
	schemaPath string,
	sampleDataPath string,
	log *logger.Logger,
) SetupService {
	return &setupService{
		collectionRepo: collectionRepo,
		cacheRepo:      cacheRepo,
		schemaPath:     schemaPath,
		sampleDataPath: sampleDataPath,
		log:            log,
	}
}

func (s *setupService) Reset(ctx context.Context) ([]string, uint, error) {
	names, err := s.collectionRepo.ListNames(ctx)
	if err != nil {
		s.log.Error("SetupService -> Reset -> list collections failed", "error", err)
		return nil, apperrors.HTTPStatus(err), err
	}

	dropped := make([]string, 0, len(names))
	for _, name := range names {
		if err := s.collectionRepo.Drop(ctx, name); err != nil {
			s.log.Error("SetupService -> Reset -> drop failed", "collection", name, "error", err)
			return dropped, apperrors.HTTPStatus(err), err
		}
		dropped = append(dropped, name)
	}

	s.invalidateCourses(ctx)
	s.log.Info("SetupService -> Reset -> done", "dropped", dropped)
	return dropped, http.StatusOK, nil
}

func (s *setupService) Provision(ctx context.Context) ([]string, uint, error) {
	schemas, err := schema.LoadSchemas(s.schemaPath)
	if err != nil {
		s.log.Error("SetupService -> Provision -> load schemas failed", "path", s.schemaPath, "error", err)
		return nil, apperrors.HTTPStatus(err), err
	}

	created := make([]string, 0, len(schemas))
	for _, cs := range schemas {
		if err := s.collectionRepo.CreateWithValidator(ctx, cs.Name, cs.Validator); err != nil {
			s.log.Error("SetupService -> Provision -> create collection failed", "collection", cs.Name, "error", err)
			return created, apperrors.HTTPStatus(err), fmt.Errorf("create collection %s: %w", cs.Name, err)
		}
		if err := s.collectionRepo.EnsureIndexes(ctx, cs.Name, constants.CollectionIndexes[cs.Name]); err != nil {
			s.log.Error("SetupService -> Provision -> create indexes failed", "collection", cs.Name, "error", err)
			return created, apperrors.HTTPStatus(err), fmt.Errorf("create indexes on %s: %w", cs.Name, err)
		}
		created = append(created, cs.Name)
		s.log.Debug("SetupService -> Provision -> collection created", "collection", cs.Name)
	}

	s.log.Info("SetupService -> Provision -> done", "collections", created)
	return created, http.StatusCreated, nil
}

func (s *setupService) Seed(ctx context.Context) (*dtos.SeedReport, uint, error) {
	schemas, err := schema.LoadSchemas(s.schemaPath)
	if err != nil {
		s.log.Error("SetupService -> Seed -> load schemas failed", "path", s.schemaPath, "error", err)
		return nil, apperrors.HTTPStatus(err), err
	}
	sample, err := schema.LoadSampleData(s.sampleDataPath)
	if err != nil {
		s.log.Error("SetupService -> Seed -> load sample data failed", "path", s.sampleDataPath, "error", err)
		return nil, apperrors.HTTPStatus(err), err
	}

	report := &dtos.SeedReport{
		Inserted: make(map[string]int),
		Skipped:  make([]string, 0),
	}
	defer s.invalidateCourses(ctx)

	for _, entry := range sample {
		records, ok := entry.Value.(bson.A)
		if !ok {
			s.log.Warn("SetupService -> Seed -> skipping key, value is not a list", "key", entry.Key)
			report.Skipped = append(report.Skipped, entry.Key)
			continue
		}
		validator, ok := schemas.Lookup(entry.Key)
		if !ok {
			s.log.Warn("SetupService -> Seed -> skipping key, no schema for collection", "key", entry.Key)
			report.Skipped = append(report.Skipped, entry.Key)
			continue
		}

		docs, err := convertRecords(entry.Key, records, schema.DateFields(validator))
		if err != nil {
			s.log.Error("SetupService -> Seed -> date conversion failed", "collection", entry.Key, "error", err)
			return report, apperrors.HTTPStatus(err), err
		}

		inserted, err := s.collectionRepo.InsertMany(ctx, entry.Key, docs)
		report.Inserted[entry.Key] = inserted
		if err != nil {
			s.log.Error("SetupService -> Seed -> insert failed", "collection", entry.Key, "inserted", inserted, "error", err)
			return report, apperrors.HTTPStatus(err), fmt.Errorf("seed %s: %w", entry.Key, err)
		}
		s.log.Debug("SetupService -> Seed -> collection seeded", "collection", entry.Key, "inserted", inserted)
	}

	s.log.Info("SetupService -> Seed -> done", "inserted", report.Inserted, "skipped", report.Skipped)
	return report, http.StatusCreated, nil
}

func (s *setupService) Run(ctx context.Context, seed bool) (*dtos.SetupResponse, uint, error) {
	response := &dtos.SetupResponse{}

	dropped, statusCode, err := s.Reset(ctx)
	response.Dropped = dropped
	if err != nil {
		return response, statusCode, err
	}

	provisioned, statusCode, err := s.Provision(ctx)
	response.Provisioned = provisioned
	if err != nil {
		return response, statusCode, err
	}

	if seed {
		report, statusCode, err := s.Seed(ctx)
		response.Seed = report
		if err != nil {
			return response, statusCode, err
		}
	}

	return response, http.StatusCreated, nil
}

func (s *setupService) invalidateCourses(ctx context.Context) {
	if err := s.cacheRepo.InvalidatePrefix(ctx, constants.CacheKeyCoursesPrefix); err != nil {
		s.log.Warn("SetupService -> invalidateCourses -> cache flush failed", "error", err)
	}
}

func convertRecords(collection string, records bson.A, dateFields schema.FieldSet) ([]interface{}, error) {
	docs := make([]interface{}, 0, len(records))
	for i, record := range records {
		converted, err := schema.ConvertDates(record, dateFields)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", collection, i, err)
		}
		docs = append(docs, converted)
	}
	return docs, nil
}
