package service

import (
	"github.com/karabo-m/luct-reporting-api/internal/models"
	"github.com/karabo-m/luct-reporting-api/internal/repository"
)

// reportScope translates an actor into the repository filter implementing the
// role-scoped visibility rule. Listings, exports and statistics all go
// through here; a divergence between them would be a correctness bug.
//
// Lecturers see only their own reports. Students see all reports (the portal
// does not scope them by stream or course at the data-access boundary). All
// other known roles see everything; every all-visibility role may narrow to a
// status, which feeds the review queue.
func reportScope(actor models.Actor, status *models.ReportStatus) repository.ReportFilter {
	switch actor.Role {
	case models.RoleLecturer:
		id := actor.ID
		return repository.ReportFilter{LecturerID: &id, Status: status}
	case models.RoleStudent:
		return repository.ReportFilter{Status: status}
	case models.RolePrincipalLecturer, models.RoleProgramLeader, models.RoleAdmin:
		return repository.ReportFilter{Status: status}
	default:
		// Unknown roles see nothing of their own; scope to an impossible
		// lecturer rather than leaking the full set.
		var none uint
		return repository.ReportFilter{LecturerID: &none}
	}
}
