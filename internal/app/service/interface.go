package service

import (
	"context"

	"github.com/modem-man-gmx/Lightest/internal/app/models"
)

type SourceService interface {
	Generate(ctx context.Context) (models.GenerateResult, error)
	Check(ctx context.Context) (models.CheckResult, error)
}
