package member

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/teamplan/team-calendar-backend/internal/database"
	"github.com/teamplan/team-calendar-backend/internal/model"
)

func (*Repository) GetMemberByEmail(ctx context.Context, q database.Queryable, email string) (*model.Member, error) {
	members, err := getMembers(ctx, q, sq.Eq{"email": email})
	if err != nil {
		return nil, err
	}

	if len(members) == 0 {
		return nil, model.ErrNoRecord
	}

	return members[0], nil
}

func (*Repository) GetMemberByID(ctx context.Context, q database.Queryable, id int64) (*model.Member, error) {
	members, err := getMembers(ctx, q, sq.Eq{"id": id})
	if err != nil {
		return nil, err
	}

	if len(members) == 0 {
		return nil, model.ErrNoRecord
	}

	return members[0], nil
}

func getMembers(ctx context.Context, q database.Queryable, predicate interface{}) ([]*model.Member, error) {
	qb := baseQuery.
		Where(predicate)

	var dtos []*memberDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Member, len(dtos))
	for i, d := range dtos {
		res[i] = mapToMember(d)
	}

	return res, nil
}
