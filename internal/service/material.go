package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Franco-15/classroom-backend/internal/domain"
	"github.com/Franco-15/classroom-backend/internal/errdefs"
	"github.com/Franco-15/classroom-backend/internal/permission"
)

type CreateMaterialInput struct {
	ClassID     uuid.UUID
	Title       string
	Description *string
	FileURL     *string
	Link        *string
}

type MaterialService struct {
	materialRepo MaterialRepository
	classRepo    ClassRepository
	membership   *MembershipService
}

func NewMaterialService(
	materialRepo MaterialRepository,
	classRepo ClassRepository,
	membership *MembershipService,
) *MaterialService {
	return &MaterialService{
		materialRepo: materialRepo,
		classRepo:    classRepo,
		membership:   membership,
	}
}

func (s *MaterialService) CreateMaterial(ctx context.Context, input CreateMaterialInput) (*domain.Material, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	class, err := s.classRepo.GetByID(ctx, input.ClassID)
	if err != nil {
		return nil, err
	}
	if !permission.Can(p, permission.ActionCreateMaterial, permission.Resource{ClassTeacherID: class.TeacherID}) {
		return nil, errdefs.ErrPermissionDenied
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", errdefs.ErrValidation)
	}
	if !hasValue(input.FileURL) && !hasValue(input.Link) {
		return nil, fmt.Errorf("%w: either a file or a link is required", errdefs.ErrValidation)
	}

	m := &domain.Material{
		ClassID:     class.ID,
		AuthorID:    p.ID,
		Title:       title,
		Description: input.Description,
		FileURL:     input.FileURL,
		Link:        input.Link,
	}
	if err := s.materialRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MaterialService) ListMaterials(ctx context.Context, classID uuid.UUID) ([]*domain.Material, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return nil, err
	}
	enrolled, err := s.membership.IsEnrolled(ctx, classID, p.ID)
	if err != nil {
		return nil, err
	}
	res := permission.Resource{ClassTeacherID: class.TeacherID, Enrolled: enrolled}
	if !permission.Can(p, permission.ActionViewClass, res) {
		return nil, errdefs.ErrPermissionDenied
	}
	return s.materialRepo.ListByClass(ctx, classID)
}

func (s *MaterialService) DeleteMaterial(ctx context.Context, id uuid.UUID) error {
	p, err := principalFromContext(ctx)
	if err != nil {
		return err
	}

	m, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	class, err := s.classRepo.GetByID(ctx, m.ClassID)
	if err != nil {
		return err
	}
	if !permission.Can(p, permission.ActionDeleteMaterial, permission.Resource{ClassTeacherID: class.TeacherID}) {
		return errdefs.ErrPermissionDenied
	}
	return s.materialRepo.Delete(ctx, id)
}

func hasValue(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
