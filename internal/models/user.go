package models

import "time"

// Role is the closed set of portal roles. Role checks switch exhaustively on
// these values; an unknown role never falls through to a permissive default.
type Role string

const (
	RoleStudent           Role = "student"
	RoleLecturer          Role = "lecturer"
	RolePrincipalLecturer Role = "principal_lecturer"
	RoleProgramLeader     Role = "program_leader"
	RoleAdmin             Role = "admin"
)

// Valid reports whether the role is one of the five known values.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleLecturer, RolePrincipalLecturer, RoleProgramLeader, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanAuthorReport reports whether the role may create class reports.
func (r Role) CanAuthorReport() bool {
	switch r {
	case RoleLecturer, RolePrincipalLecturer, RoleProgramLeader:
		return true
	default:
		return false
	}
}

// Stream is an academic specialization track.
type Stream string

const (
	StreamIT                  Stream = "IT"
	StreamInformationSystems  Stream = "Information Systems"
	StreamComputerScience     Stream = "Computer Science"
	StreamSoftwareEngineering Stream = "Software Engineering"
	StreamNotApplicable       Stream = "N/A"
)

// Valid reports whether the stream is a known track.
func (s Stream) Valid() bool {
	switch s {
	case StreamIT, StreamInformationSystems, StreamComputerScience, StreamSoftwareEngineering, StreamNotApplicable:
		return true
	default:
		return false
	}
}

// ProgramType is the top-level curriculum track.
type ProgramType string

const (
	ProgramDegree        ProgramType = "Degree"
	ProgramDiploma       ProgramType = "Diploma"
	ProgramNotApplicable ProgramType = "N/A"
)

// Valid reports whether the program type is a known value.
func (p ProgramType) Valid() bool {
	switch p {
	case ProgramDegree, ProgramDiploma, ProgramNotApplicable:
		return true
	default:
		return false
	}
}

// User is an account that can sign in to the portal. Email and ID are
// immutable after creation; name, role, stream and program type may be edited
// by an admin.
type User struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Email        string      `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string      `gorm:"size:255;not null" json:"-"`
	Name         string      `gorm:"size:255;not null" json:"name"`
	Role         Role        `gorm:"size:32;not null" json:"role"`
	Stream       Stream      `gorm:"size:64;not null;default:'N/A'" json:"stream"`
	Program      ProgramType `gorm:"size:16;not null;default:'N/A'" json:"program_type"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Actor carries the identity attributes every core operation needs to decide
// visibility and permissions. It is passed explicitly; nothing in the core
// reads an ambient session.
type Actor struct {
	ID      uint
	Role    Role
	Stream  Stream
	Program ProgramType
}

// Actor derives the acting identity from a stored user.
func (u User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role, Stream: u.Stream, Program: u.Program}
}
