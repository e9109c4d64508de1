package service

import (
	"context"
	"fmt"

	"learntrack/internal/model"
	"learntrack/internal/repository"
)

// TestService exposes test result operations. Every attempt is kept,
// including repeat attempts at the same test.
type TestService interface {
	SaveResult(ctx context.Context, result *model.TestResult) (*model.TestResult, error)
	ListResults(ctx context.Context, userID uint) ([]model.TestResult, error)
}

type testService struct {
	testResultRepo repository.TestResultRepository
}

// NewTestService builds a TestService.
func NewTestService(testResultRepo repository.TestResultRepository) TestService {
	return &testService{testResultRepo: testResultRepo}
}

func (s *testService) SaveResult(ctx context.Context, result *model.TestResult) (*model.TestResult, error) {
	if err := s.testResultRepo.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("save test result: %w", err)
	}
	return result, nil
}

func (s *testService) ListResults(ctx context.Context, userID uint) ([]model.TestResult, error) {
	return s.testResultRepo.ListByUser(ctx, userID)
}
