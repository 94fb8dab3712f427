package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/karabo-m/luct-reporting-api/internal/models"
)

func seedAssignmentRow(t *testing.T, db *gorm.DB, lecturerID, assignedByID uint, program models.ProgramType) models.CourseAssignment {
	t.Helper()
	assignment := models.CourseAssignment{
		CourseCode:   "DIWA2110",
		CourseName:   "Web Application Development",
		LecturerID:   lecturerID,
		Stream:       models.StreamIT,
		Program:      program,
		AcademicYear: "2026",
		Semester:     "1",
		AssignedByID: assignedByID,
	}
	require.NoError(t, db.Create(&assignment).Error)
	return assignment
}

func TestAssignmentRepositoryListFiltersAndJoins(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssignmentRepository(db)
	thabo := seedUser(t, db, "thabo", models.RoleLecturer)
	neo := seedUser(t, db, "neo", models.RoleLecturer)
	leader := seedUser(t, db, "palesa", models.RoleProgramLeader)

	seedAssignmentRow(t, db, thabo.ID, leader.ID, models.ProgramDiploma)
	seedAssignmentRow(t, db, neo.ID, leader.ID, models.ProgramDegree)

	all, err := repo.List(context.Background(), AssignmentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "palesa", all[0].AssignedBy.Name, "assigner must come back joined")

	scoped, err := repo.List(context.Background(), AssignmentFilter{LecturerID: &thabo.ID})
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	require.Equal(t, "thabo", scoped[0].Lecturer.Name)

	diploma := models.ProgramDiploma
	byProgram, err := repo.List(context.Background(), AssignmentFilter{Program: &diploma})
	require.NoError(t, err)
	require.Len(t, byProgram, 1)
	require.Equal(t, thabo.ID, byProgram[0].LecturerID)
}

func TestAssignmentRepositoryDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssignmentRepository(db)
	thabo := seedUser(t, db, "thabo", models.RoleLecturer)
	leader := seedUser(t, db, "palesa", models.RoleProgramLeader)
	assignment := seedAssignmentRow(t, db, thabo.ID, leader.ID, models.ProgramDiploma)

	require.NoError(t, repo.Delete(context.Background(), assignment.ID))

	_, err := repo.GetByID(context.Background(), assignment.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.Delete(context.Background(), assignment.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound, "deleting an already-removed assignment must say so")
}
