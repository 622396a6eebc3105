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

type CreateAnnouncementInput struct {
	ClassID uuid.UUID
	Title   string
	Content string
}

type AnnouncementService struct {
	announcementRepo AnnouncementRepository
	classRepo        ClassRepository
	membership       *MembershipService
}

func NewAnnouncementService(
	announcementRepo AnnouncementRepository,
	classRepo ClassRepository,
	membership *MembershipService,
) *AnnouncementService {
	return &AnnouncementService{
		announcementRepo: announcementRepo,
		classRepo:        classRepo,
		membership:       membership,
	}
}

func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, input CreateAnnouncementInput) (*domain.Announcement, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	class, err := s.classRepo.GetByID(ctx, input.ClassID)
	if err != nil {
		return nil, err
	}
	if !permission.Can(p, permission.ActionCreateAnnouncement, permission.Resource{ClassTeacherID: class.TeacherID}) {
		return nil, errdefs.ErrPermissionDenied
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", errdefs.ErrValidation)
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", errdefs.ErrValidation)
	}

	a := &domain.Announcement{
		ClassID:  class.ID,
		AuthorID: p.ID,
		Title:    title,
		Content:  content,
	}
	if err := s.announcementRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// ListAnnouncements returns the class feed for the class teacher, an
// enrolled student or an admin.
func (s *AnnouncementService) ListAnnouncements(ctx context.Context, classID uuid.UUID) ([]*domain.Announcement, error) {
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
	return s.announcementRepo.ListByClass(ctx, classID)
}

func (s *AnnouncementService) DeleteAnnouncement(ctx context.Context, id uuid.UUID) error {
	p, err := principalFromContext(ctx)
	if err != nil {
		return err
	}

	a, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	class, err := s.classRepo.GetByID(ctx, a.ClassID)
	if err != nil {
		return err
	}
	res := permission.Resource{ClassTeacherID: class.TeacherID, AnnouncementAuthor: a.AuthorID}
	if !permission.Can(p, permission.ActionDeleteAnnouncement, res) {
		return errdefs.ErrPermissionDenied
	}
	return s.announcementRepo.Delete(ctx, id)
}
