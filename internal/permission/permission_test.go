package permission_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Franco-15/classroom-backend/internal/domain"
	"github.com/Franco-15/classroom-backend/internal/permission"
)

func TestCan(t *testing.T) {
	teacherID := uuid.New()
	studentID := uuid.New()
	otherID := uuid.New()

	admin := domain.Principal{ID: uuid.New(), Role: domain.RoleAdmin}
	teacher := domain.Principal{ID: teacherID, Role: domain.RoleTeacher}
	otherTeacher := domain.Principal{ID: otherID, Role: domain.RoleTeacher}
	student := domain.Principal{ID: studentID, Role: domain.RoleStudent}
	otherStudent := domain.Principal{ID: otherID, Role: domain.RoleStudent}

	classRes := permission.Resource{ClassTeacherID: teacherID}
	enrolledRes := permission.Resource{ClassTeacherID: teacherID, Enrolled: true}

	tests := []struct {
		name      string
		principal domain.Principal
		action    permission.Action
		resource  permission.Resource
		want      bool
	}{
		{"CreateTask_OwningTeacher", teacher, permission.ActionCreateTask, classRes, true},
		{"CreateTask_Admin", admin, permission.ActionCreateTask, classRes, true},
		{"CreateTask_OtherTeacher", otherTeacher, permission.ActionCreateTask, classRes, false},
		{"CreateTask_Student", student, permission.ActionCreateTask, enrolledRes, false},

		{"UpdateTask_Author", teacher, permission.ActionUpdateTask, permission.Resource{TaskAuthorID: teacherID}, true},
		{"UpdateTask_Admin", admin, permission.ActionUpdateTask, permission.Resource{TaskAuthorID: teacherID}, true},
		{"UpdateTask_OtherTeacher", otherTeacher, permission.ActionUpdateTask, permission.Resource{TaskAuthorID: teacherID}, false},
		{"DeleteTask_Author", teacher, permission.ActionDeleteTask, permission.Resource{TaskAuthorID: teacherID}, true},
		{"DeleteTask_Student", student, permission.ActionDeleteTask, permission.Resource{TaskAuthorID: teacherID}, false},

		{"SubmitTask_EnrolledStudent", student, permission.ActionSubmitTask, enrolledRes, true},
		{"SubmitTask_UnenrolledStudent", student, permission.ActionSubmitTask, classRes, false},
		{"SubmitTask_Teacher", teacher, permission.ActionSubmitTask, enrolledRes, false},
		{"SubmitTask_Admin", admin, permission.ActionSubmitTask, enrolledRes, false},

		{"ViewOwnSubmission_Owner", student, permission.ActionViewOwnSubmission, permission.Resource{SubmissionStudentID: studentID}, true},
		{"ViewOwnSubmission_Other", otherStudent, permission.ActionViewOwnSubmission, permission.Resource{SubmissionStudentID: studentID}, false},

		{"ViewTaskSubmissions_ClassTeacher", teacher, permission.ActionViewTaskSubmissions, classRes, true},
		{"ViewTaskSubmissions_Admin", admin, permission.ActionViewTaskSubmissions, classRes, true},
		{"ViewTaskSubmissions_Student", student, permission.ActionViewTaskSubmissions, enrolledRes, false},

		{"ViewSubmission_Owner", student, permission.ActionViewSubmission, permission.Resource{ClassTeacherID: teacherID, SubmissionStudentID: studentID}, true},
		{"ViewSubmission_ClassTeacher", teacher, permission.ActionViewSubmission, permission.Resource{ClassTeacherID: teacherID, SubmissionStudentID: studentID}, true},
		{"ViewSubmission_Admin", admin, permission.ActionViewSubmission, permission.Resource{ClassTeacherID: teacherID, SubmissionStudentID: studentID}, true},
		{"ViewSubmission_UnrelatedStudent", otherStudent, permission.ActionViewSubmission, permission.Resource{ClassTeacherID: teacherID, SubmissionStudentID: studentID}, false},

		{"GradeSubmission_ClassTeacher", teacher, permission.ActionGradeSubmission, classRes, true},
		{"GradeSubmission_Admin", admin, permission.ActionGradeSubmission, classRes, true},
		{"GradeSubmission_OtherTeacher", otherTeacher, permission.ActionGradeSubmission, classRes, false},
		{"GradeSubmission_Student", student, permission.ActionGradeSubmission, enrolledRes, false},

		{"JoinClass_Student", student, permission.ActionJoinClass, permission.Resource{}, true},
		{"JoinClass_Teacher", teacher, permission.ActionJoinClass, permission.Resource{}, false},
		{"JoinClass_Admin", admin, permission.ActionJoinClass, permission.Resource{}, false},

		{"RemoveStudent_ClassTeacher", teacher, permission.ActionRemoveStudent, classRes, true},
		{"RemoveStudent_Admin", admin, permission.ActionRemoveStudent, classRes, true},
		{"RemoveStudent_OtherTeacher", otherTeacher, permission.ActionRemoveStudent, classRes, false},

		{"CreateAnnouncement_ClassTeacher", teacher, permission.ActionCreateAnnouncement, classRes, true},
		{"CreateAnnouncement_Admin", admin, permission.ActionCreateAnnouncement, classRes, true},
		{"CreateAnnouncement_Student", student, permission.ActionCreateAnnouncement, enrolledRes, false},
		{"DeleteAnnouncement_Author", otherTeacher, permission.ActionDeleteAnnouncement, permission.Resource{ClassTeacherID: teacherID, AnnouncementAuthor: otherID}, true},

		{"CreateMaterial_ClassTeacher", teacher, permission.ActionCreateMaterial, classRes, true},
		{"CreateMaterial_Student", student, permission.ActionCreateMaterial, enrolledRes, false},

		{"ViewClass_EnrolledStudent", student, permission.ActionViewClass, enrolledRes, true},
		{"ViewClass_UnenrolledStudent", student, permission.ActionViewClass, classRes, false},
		{"ViewClass_Teacher", teacher, permission.ActionViewClass, classRes, true},
		{"ViewClass_Admin", admin, permission.ActionViewClass, classRes, true},

		{"ListAllClasses_Admin", admin, permission.ActionListAllClasses, permission.Resource{}, true},
		{"ListAllClasses_Teacher", teacher, permission.ActionListAllClasses, permission.Resource{}, false},

		{"CreateClass_Teacher", teacher, permission.ActionCreateClass, permission.Resource{}, true},
		{"CreateClass_Admin", admin, permission.ActionCreateClass, permission.Resource{}, true},
		{"CreateClass_Student", student, permission.ActionCreateClass, permission.Resource{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, permission.Can(tc.principal, tc.action, tc.resource))
		})
	}
}
