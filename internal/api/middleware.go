package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/teamplan/team-calendar-backend/internal/model"
	"github.com/teamplan/team-calendar-backend/internal/pkg/jwt"
)

type contextKey string

const (
	contextKeyID     = contextKey("id")
	contextKeyMember = contextKey("member")
	contextKeyTeam   = contextKey("team")
)

var errCantRetrieveID = errors.New("can't retrieve id")
var errCantRetrieveTeam = errors.New("can't retrieve team")

func (a *Api) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			a.unauthorizedResponse(w, r, errors.New("no token provided"))
			return
		}

		token = strings.TrimPrefix(token, "Bearer ")

		id, err := a.jwts.GetIdFromToken(token)
		if err != nil {
			invalidTokenErr := &jwt.InvalidTokenError{}
			switch {
			case errors.As(err, &invalidTokenErr):
				a.unauthorizedResponse(w, r, invalidTokenErr)
			default:
				a.serverErrorResponse(w, r, err)
			}
			return
		}

		idContext := context.WithValue(r.Context(), contextKeyID, id)
		next.ServeHTTP(w, r.WithContext(idContext))
	})
}

func (a *Api) memberCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := r.Context().Value(contextKeyID).(int64)
		if !ok {
			a.serverErrorResponse(w, r, errCantRetrieveID)
			return
		}

		member, err := a.members.GetMemberByID(r.Context(), a.db, id)
		if err != nil {
			switch {
			case errors.Is(err, model.ErrNoRecord):
				a.forbiddenResponse(w, r, "member does not exist")
			default:
				a.serverErrorResponse(w, r, err)
			}
			return
		}

		memberCtx := context.WithValue(r.Context(), contextKeyMember, member)
		next.ServeHTTP(w, r.WithContext(memberCtx))
	})
}

func (a *Api) teamCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		memberID, ok := r.Context().Value(contextKeyID).(int64)
		if !ok {
			a.serverErrorResponse(w, r, errCantRetrieveID)
			return
		}

		teamID, err := strconv.ParseInt(chi.URLParam(r, "teamID"), 10, 64)
		if err != nil {
			a.notFoundResponse(w, r)
			return
		}

		team, err := a.teams.GetTeamByID(r.Context(), a.db, teamID)
		if err != nil {
			switch {
			case errors.Is(err, model.ErrNoRecord):
				a.notFoundResponse(w, r)
			default:
				a.serverErrorResponse(w, r, fmt.Errorf("get team: %w", err))
			}
			return
		}

		if _, err := a.teams.GetParticipant(r.Context(), a.db, team.ID, memberID); err != nil {
			switch {
			case errors.Is(err, model.ErrNoRecord):
				a.notFoundResponse(w, r)
			default:
				a.serverErrorResponse(w, r, fmt.Errorf("get participant: %w", err))
			}
			return
		}

		teamCtx := context.WithValue(r.Context(), contextKeyTeam, team)
		next.ServeHTTP(w, r.WithContext(teamCtx))
	})
}
