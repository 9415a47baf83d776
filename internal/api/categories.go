package api

import (
	"fmt"
	"net/http"

	"github.com/teamplan/team-calendar-backend/internal/model"
	"github.com/teamplan/team-calendar-backend/internal/pkg/validator"
)

type categoryResp struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CategoryType string `json:"category_type"`
	Color        string `json:"color"`
}

func mapToCategoryResp(category *model.Category) (*categoryResp, error) {
	return &categoryResp{
		ID:           category.ID,
		Name:         category.Name,
		CategoryType: category.CategoryType.String(),
		Color:        category.Color,
	}, nil
}

func (a *Api) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	team, ok := r.Context().Value(contextKeyTeam).(*model.Team)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveTeam)
		return
	}

	req := &struct {
		Name         string `json:"name"`
		CategoryType string `json:"category_type"`
		Color        string `json:"color"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()

	v.Check(len(req.Name) != 0, "name", "name must be provided")
	v.Check(validator.Matches(req.Color, validator.HexRX), "color", "color must be valid HEX color")

	categoryType, err := model.ParseCategoryType(req.CategoryType)
	v.Check(err == nil, "category_type", "category type must be SCHEDULE or TODO")

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	color, err := model.ParseColor(req.Color)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	id, err := a.categories.CreateCategory(r.Context(), a.db, &model.CategoryCreate{
		TeamID:       team.ID,
		Name:         req.Name,
		CategoryType: categoryType,
		Color:        color,
	})
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("create category: %w", err))
		return
	}

	resp := &categoryResp{
		ID:           id,
		Name:         req.Name,
		CategoryType: categoryType.String(),
		Color:        color,
	}

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	team, ok := r.Context().Value(contextKeyTeam).(*model.Team)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveTeam)
		return
	}

	categories, err := a.categories.GetCategoriesByTeam(r.Context(), a.db, team.ID)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get categories: %w", err))
		return
	}

	resp, err := mapSlice(categories, mapToCategoryResp)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
