package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Sammy-0y/arbeit-project/internal/models"
)

type JobRepository interface {
	FindByID(id uuid.UUID) (*models.Job, error)
	FindClientByID(id uuid.UUID) (*models.Client, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) FindByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &models.NotFoundError{Entity: "Job", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return &job, nil
}

func (r *jobRepository) FindClientByID(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	if err := r.db.Where("id = ?", id).First(&client).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &models.NotFoundError{Entity: "Client", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return &client, nil
}
