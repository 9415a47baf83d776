package member

import (
	"context"
	"fmt"

	"github.com/teamplan/team-calendar-backend/internal/database"
	"github.com/teamplan/team-calendar-backend/internal/model"
)

func (*Repository) CreateMember(ctx context.Context, q database.Queryable, member *model.MemberCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.MembersTable).
		Columns("full_name", "email", "photo").
		Values(
			member.FullName,
			member.Email,
			member.Photo,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
