package database

import (
	"context"

	"github.com/rpupo63/nexusconsult-backend/models"
)

type TeamMemberRepo struct {
	members *Resource[models.TeamMember]
}

func NewTeamMemberRepo(store Collections) *TeamMemberRepo {
	return &TeamMemberRepo{
		members: NewResource[models.TeamMember](store, models.TeamMembersCollection, "team member",
			[]Filter{{Field: "active", Value: true}},
			Order{Field: "display_order"}),
	}
}

// FindAll returns active members by display order, narrowed to department unless
// it is empty or "All".
func (r *TeamMemberRepo) FindAll(ctx context.Context, department string) ([]models.TeamMember, error) {
	q := Query{}
	if !isAll(department) {
		q = q.Eq("department", department)
	}
	return r.members.Find(ctx, q)
}
