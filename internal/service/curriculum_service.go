package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/curriforge/internal/model"
	"github.com/stemsi/curriforge/internal/repository"
)

type CurriculumService struct {
	curriculumRepo repository.CurriculumRepository
	log            zerolog.Logger
}

func NewCurriculumService(curriculumRepo repository.CurriculumRepository, log zerolog.Logger) *CurriculumService {
	return &CurriculumService{
		curriculumRepo: curriculumRepo,
		log:            log.With().Str("component", "curriculum_service").Logger(),
	}
}

func (s *CurriculumService) List(ctx context.Context) ([]model.Curriculum, error) {
	curricula, err := s.curriculumRepo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list curricula")
		return nil, err
	}
	if curricula == nil {
		curricula = []model.Curriculum{}
	}
	return curricula, nil
}

// Create saves a new curriculum and returns it with its assigned id and timestamp.
func (s *CurriculumService) Create(ctx context.Context, req *model.CreateCurriculumRequest) (*model.Curriculum, error) {
	c := req.ToCurriculum()
	if err := s.curriculumRepo.Create(ctx, c); err != nil {
		s.log.Error().Err(err).Str("title", c.Title).Msg("failed to save curriculum")
		return nil, err
	}

	s.log.Debug().Int64("id", c.ID).Str("subject", c.Subject).Msg("curriculum saved")
	return c, nil
}

func (s *CurriculumService) Delete(ctx context.Context, id int64) error {
	if err := s.curriculumRepo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Int64("id", id).Msg("failed to delete curriculum")
		return err
	}
	return nil
}

// Ping reports whether the store is reachable.
func (s *CurriculumService) Ping(ctx context.Context) error {
	return s.curriculumRepo.Ping(ctx)
}
