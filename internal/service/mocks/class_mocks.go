package mocks

import (
	"context"
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/Franco-15/classroom-backend/internal/domain"
)

type MockClassRepository struct {
	ctrl     *gomock.Controller
	recorder *MockClassRepositoryMockRecorder
}

type MockClassRepositoryMockRecorder struct {
	mock *MockClassRepository
}

func NewMockClassRepository(ctrl *gomock.Controller) *MockClassRepository {
	mock := &MockClassRepository{ctrl: ctrl}
	mock.recorder = &MockClassRepositoryMockRecorder{mock}
	return mock
}

func (m *MockClassRepository) EXPECT() *MockClassRepositoryMockRecorder {
	return m.recorder
}

func (m *MockClassRepository) Create(ctx context.Context, class *domain.Class) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, class)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockClassRepositoryMockRecorder) Create(ctx, class interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockClassRepository)(nil).Create), ctx, class)
}

func (m *MockClassRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Class, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Class)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockClassRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockClassRepository)(nil).GetByID), ctx, id)
}

func (m *MockClassRepository) GetByCode(ctx context.Context, code string) (*domain.Class, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByCode", ctx, code)
	ret0, _ := ret[0].(*domain.Class)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockClassRepositoryMockRecorder) GetByCode(ctx, code interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByCode", reflect.TypeOf((*MockClassRepository)(nil).GetByCode), ctx, code)
}

func (m *MockClassRepository) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*domain.Class, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByTeacher", ctx, teacherID)
	ret0, _ := ret[0].([]*domain.Class)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockClassRepositoryMockRecorder) ListByTeacher(ctx, teacherID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByTeacher", reflect.TypeOf((*MockClassRepository)(nil).ListByTeacher), ctx, teacherID)
}

func (m *MockClassRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Class, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByStudent", ctx, studentID)
	ret0, _ := ret[0].([]*domain.Class)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockClassRepositoryMockRecorder) ListByStudent(ctx, studentID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByStudent", reflect.TypeOf((*MockClassRepository)(nil).ListByStudent), ctx, studentID)
}

func (m *MockClassRepository) ListAll(ctx context.Context) ([]*domain.Class, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListAll", ctx)
	ret0, _ := ret[0].([]*domain.Class)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockClassRepositoryMockRecorder) ListAll(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListAll", reflect.TypeOf((*MockClassRepository)(nil).ListAll), ctx)
}

func (m *MockClassRepository) Update(ctx context.Context, class *domain.Class) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, class)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockClassRepositoryMockRecorder) Update(ctx, class interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockClassRepository)(nil).Update), ctx, class)
}

func (m *MockClassRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockClassRepositoryMockRecorder) Delete(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockClassRepository)(nil).Delete), ctx, id)
}

func (m *MockClassRepository) CountStudents(ctx context.Context, classID uuid.UUID) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountStudents", ctx, classID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockClassRepositoryMockRecorder) CountStudents(ctx, classID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountStudents", reflect.TypeOf((*MockClassRepository)(nil).CountStudents), ctx, classID)
}

type MockEnrollmentRepository struct {
	ctrl     *gomock.Controller
	recorder *MockEnrollmentRepositoryMockRecorder
}

type MockEnrollmentRepositoryMockRecorder struct {
	mock *MockEnrollmentRepository
}

func NewMockEnrollmentRepository(ctrl *gomock.Controller) *MockEnrollmentRepository {
	mock := &MockEnrollmentRepository{ctrl: ctrl}
	mock.recorder = &MockEnrollmentRepositoryMockRecorder{mock}
	return mock
}

func (m *MockEnrollmentRepository) EXPECT() *MockEnrollmentRepositoryMockRecorder {
	return m.recorder
}

func (m *MockEnrollmentRepository) Create(ctx context.Context, classID, studentID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, classID, studentID)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockEnrollmentRepositoryMockRecorder) Create(ctx, classID, studentID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockEnrollmentRepository)(nil).Create), ctx, classID, studentID)
}

func (m *MockEnrollmentRepository) Delete(ctx context.Context, classID, studentID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, classID, studentID)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockEnrollmentRepositoryMockRecorder) Delete(ctx, classID, studentID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockEnrollmentRepository)(nil).Delete), ctx, classID, studentID)
}

func (m *MockEnrollmentRepository) Exists(ctx context.Context, classID, studentID uuid.UUID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Exists", ctx, classID, studentID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockEnrollmentRepositoryMockRecorder) Exists(ctx, classID, studentID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Exists", reflect.TypeOf((*MockEnrollmentRepository)(nil).Exists), ctx, classID, studentID)
}

func (m *MockEnrollmentRepository) ListStudents(ctx context.Context, classID uuid.UUID) ([]*domain.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListStudents", ctx, classID)
	ret0, _ := ret[0].([]*domain.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockEnrollmentRepositoryMockRecorder) ListStudents(ctx, classID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListStudents", reflect.TypeOf((*MockEnrollmentRepository)(nil).ListStudents), ctx, classID)
}

type MockAnnouncementRepository struct {
	ctrl     *gomock.Controller
	recorder *MockAnnouncementRepositoryMockRecorder
}

type MockAnnouncementRepositoryMockRecorder struct {
	mock *MockAnnouncementRepository
}

func NewMockAnnouncementRepository(ctrl *gomock.Controller) *MockAnnouncementRepository {
	mock := &MockAnnouncementRepository{ctrl: ctrl}
	mock.recorder = &MockAnnouncementRepositoryMockRecorder{mock}
	return mock
}

func (m *MockAnnouncementRepository) EXPECT() *MockAnnouncementRepositoryMockRecorder {
	return m.recorder
}

func (m *MockAnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, a)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockAnnouncementRepositoryMockRecorder) Create(ctx, a interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockAnnouncementRepository)(nil).Create), ctx, a)
}

func (m *MockAnnouncementRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Announcement, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Announcement)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockAnnouncementRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockAnnouncementRepository)(nil).GetByID), ctx, id)
}

func (m *MockAnnouncementRepository) ListByClass(ctx context.Context, classID uuid.UUID) ([]*domain.Announcement, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByClass", ctx, classID)
	ret0, _ := ret[0].([]*domain.Announcement)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockAnnouncementRepositoryMockRecorder) ListByClass(ctx, classID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByClass", reflect.TypeOf((*MockAnnouncementRepository)(nil).ListByClass), ctx, classID)
}

func (m *MockAnnouncementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockAnnouncementRepositoryMockRecorder) Delete(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockAnnouncementRepository)(nil).Delete), ctx, id)
}

type MockMaterialRepository struct {
	ctrl     *gomock.Controller
	recorder *MockMaterialRepositoryMockRecorder
}

type MockMaterialRepositoryMockRecorder struct {
	mock *MockMaterialRepository
}

func NewMockMaterialRepository(ctrl *gomock.Controller) *MockMaterialRepository {
	mock := &MockMaterialRepository{ctrl: ctrl}
	mock.recorder = &MockMaterialRepositoryMockRecorder{mock}
	return mock
}

func (m *MockMaterialRepository) EXPECT() *MockMaterialRepositoryMockRecorder {
	return m.recorder
}

func (m *MockMaterialRepository) Create(ctx context.Context, mat *domain.Material) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, mat)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockMaterialRepositoryMockRecorder) Create(ctx, mat interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockMaterialRepository)(nil).Create), ctx, mat)
}

func (m *MockMaterialRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Material, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Material)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockMaterialRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockMaterialRepository)(nil).GetByID), ctx, id)
}

func (m *MockMaterialRepository) ListByClass(ctx context.Context, classID uuid.UUID) ([]*domain.Material, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByClass", ctx, classID)
	ret0, _ := ret[0].([]*domain.Material)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockMaterialRepositoryMockRecorder) ListByClass(ctx, classID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByClass", reflect.TypeOf((*MockMaterialRepository)(nil).ListByClass), ctx, classID)
}

func (m *MockMaterialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockMaterialRepositoryMockRecorder) Delete(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockMaterialRepository)(nil).Delete), ctx, id)
}
