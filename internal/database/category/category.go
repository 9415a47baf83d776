package category

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/teamplan/team-calendar-backend/internal/database"
	"github.com/teamplan/team-calendar-backend/internal/model"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"id",
		"team_id",
		"name",
		"category_type",
		"color",
	).
	From(database.CategoriesTable)

type categoryDTO struct {
	ID           int64
	TeamID       int64
	Name         string
	CategoryType int
	Color        string
}

func mapToCategory(d *categoryDTO) *model.Category {
	return &model.Category{
		ID: d.ID,
		CategoryCreate: model.CategoryCreate{
			TeamID:       d.TeamID,
			Name:         d.Name,
			CategoryType: model.CategoryType(d.CategoryType),
			Color:        d.Color,
		},
	}
}

func (*Repository) CreateCategory(ctx context.Context, q database.Queryable, category *model.CategoryCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.CategoriesTable).
		Columns("team_id", "name", "category_type", "color").
		Values(
			category.TeamID,
			category.Name,
			int(category.CategoryType),
			category.Color,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}

func (*Repository) GetCategoryByID(ctx context.Context, q database.Queryable, id int64) (*model.Category, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	dto := &categoryDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToCategory(dto), nil
}

func (*Repository) GetCategoriesByTeam(ctx context.Context, q database.Queryable, teamID int64) ([]*model.Category, error) {
	qb := baseQuery.
		Where(sq.Eq{"team_id": teamID}).
		OrderBy("id")

	var dtos []*categoryDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Category, len(dtos))
	for i, d := range dtos {
		res[i] = mapToCategory(d)
	}

	return res, nil
}
