package mocks

import (
	"context"
	"reflect"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/Franco-15/classroom-backend/internal/domain"
)

type MockTaskRepository struct {
	ctrl     *gomock.Controller
	recorder *MockTaskRepositoryMockRecorder
}

type MockTaskRepositoryMockRecorder struct {
	mock *MockTaskRepository
}

func NewMockTaskRepository(ctrl *gomock.Controller) *MockTaskRepository {
	mock := &MockTaskRepository{ctrl: ctrl}
	mock.recorder = &MockTaskRepositoryMockRecorder{mock}
	return mock
}

func (m *MockTaskRepository) EXPECT() *MockTaskRepositoryMockRecorder {
	return m.recorder
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, task)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTaskRepositoryMockRecorder) Create(ctx, task interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockTaskRepository)(nil).Create), ctx, task)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Task)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTaskRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockTaskRepository)(nil).GetByID), ctx, id)
}

func (m *MockTaskRepository) ListByClass(ctx context.Context, classID uuid.UUID) ([]*domain.Task, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByClass", ctx, classID)
	ret0, _ := ret[0].([]*domain.Task)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTaskRepositoryMockRecorder) ListByClass(ctx, classID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByClass", reflect.TypeOf((*MockTaskRepository)(nil).ListByClass), ctx, classID)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, task)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTaskRepositoryMockRecorder) Update(ctx, task interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockTaskRepository)(nil).Update), ctx, task)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTaskRepositoryMockRecorder) Delete(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockTaskRepository)(nil).Delete), ctx, id)
}

type MockSubmissionRepository struct {
	ctrl     *gomock.Controller
	recorder *MockSubmissionRepositoryMockRecorder
}

type MockSubmissionRepositoryMockRecorder struct {
	mock *MockSubmissionRepository
}

func NewMockSubmissionRepository(ctrl *gomock.Controller) *MockSubmissionRepository {
	mock := &MockSubmissionRepository{ctrl: ctrl}
	mock.recorder = &MockSubmissionRepositoryMockRecorder{mock}
	return mock
}

func (m *MockSubmissionRepository) EXPECT() *MockSubmissionRepositoryMockRecorder {
	return m.recorder
}

func (m *MockSubmissionRepository) Upsert(ctx context.Context, submission *domain.Submission) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Upsert", ctx, submission)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockSubmissionRepositoryMockRecorder) Upsert(ctx, submission interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Upsert", reflect.TypeOf((*MockSubmissionRepository)(nil).Upsert), ctx, submission)
}

func (m *MockSubmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Submission)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockSubmissionRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockSubmissionRepository)(nil).GetByID), ctx, id)
}

func (m *MockSubmissionRepository) GetByTaskAndStudent(ctx context.Context, taskID, studentID uuid.UUID) (*domain.Submission, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByTaskAndStudent", ctx, taskID, studentID)
	ret0, _ := ret[0].(*domain.Submission)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockSubmissionRepositoryMockRecorder) GetByTaskAndStudent(ctx, taskID, studentID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByTaskAndStudent", reflect.TypeOf((*MockSubmissionRepository)(nil).GetByTaskAndStudent), ctx, taskID, studentID)
}

func (m *MockSubmissionRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.Submission, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByTask", ctx, taskID)
	ret0, _ := ret[0].([]*domain.Submission)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockSubmissionRepositoryMockRecorder) ListByTask(ctx, taskID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByTask", reflect.TypeOf((*MockSubmissionRepository)(nil).ListByTask), ctx, taskID)
}

func (m *MockSubmissionRepository) SetGrade(ctx context.Context, id uuid.UUID, grade float64, feedback *string, gradedAt time.Time) (*domain.Submission, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetGrade", ctx, id, grade, feedback, gradedAt)
	ret0, _ := ret[0].(*domain.Submission)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockSubmissionRepositoryMockRecorder) SetGrade(ctx, id, grade, feedback, gradedAt interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetGrade", reflect.TypeOf((*MockSubmissionRepository)(nil).SetGrade), ctx, id, grade, feedback, gradedAt)
}
