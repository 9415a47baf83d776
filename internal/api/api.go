package api

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/teamplan/team-calendar-backend/internal/database"
	"github.com/teamplan/team-calendar-backend/internal/model"
	"github.com/teamplan/team-calendar-backend/internal/pkg/oauth"
	"go.uber.org/zap"
)

type Api struct {
	handler    http.Handler
	logger     *zap.SugaredLogger
	randSource io.Reader

	jwts          jwtManager
	tokenParser   tokenParser
	refreshTokens refreshTokenRepository

	db         database.PGX
	members    memberRepository
	teams      teamRepository
	categories categoryRepository

	schedules scheduleService
	notifier  notifier
}

type jwtManager interface {
	CreateToken(id int64) (string, error)
	GetIdFromToken(token string) (int64, error)
}

type tokenParser interface {
	GetInfoGoogle(ctx context.Context, authCode string) (*oauth.GoogleInfo, error)
}

type refreshTokenRepository interface {
	Add(ctx context.Context, session string, id int64) error
	Get(ctx context.Context, session string) (int64, error)
	Refresh(ctx context.Context, old, new string) error
	Delete(ctx context.Context, session string) error
	DeleteExpired(ctx context.Context) error
	DeleteByUserID(ctx context.Context, id int64) error
}

type memberRepository interface {
	CreateMember(ctx context.Context, q database.Queryable, member *model.MemberCreate) (int64, error)
	GetMemberByEmail(ctx context.Context, q database.Queryable, email string) (*model.Member, error)
	GetMemberByID(ctx context.Context, q database.Queryable, id int64) (*model.Member, error)
}

type teamRepository interface {
	CreateTeam(ctx context.Context, q database.Queryable, team *model.TeamCreate) (int64, error)
	SetInviteLink(ctx context.Context, q database.Queryable, teamID int64, link string) error
	AddParticipant(ctx context.Context, q database.Queryable, participant *model.ParticipantCreate) (int64, error)
	GetTeamByID(ctx context.Context, q database.Queryable, id int64) (*model.Team, error)
	GetParticipant(ctx context.Context, q database.Queryable, teamID, memberID int64) (*model.Participant, error)
}

type categoryRepository interface {
	CreateCategory(ctx context.Context, q database.Queryable, category *model.CategoryCreate) (int64, error)
	GetCategoriesByTeam(ctx context.Context, q database.Queryable, teamID int64) ([]*model.Category, error)
}

type scheduleService interface {
	CreateSimpleSchedule(ctx context.Context, info *model.ScheduleCreate, memberID int64) (*model.SimpleSchedule, error)
	CreateRepeatSchedule(ctx context.Context, info *model.RepeatScheduleCreate, memberID int64) (*model.RepeatSchedule, error)
	EditSimpleSchedule(ctx context.Context, scheduleID int64, edit *model.ScheduleEdit, memberID int64) (*model.SimpleSchedule, error)
	EditRepeatSchedule(ctx context.Context, scheduleID int64, edit *model.RepeatScheduleEdit, memberID int64) (*model.RepeatSchedule, error)
	ConvertSimpleToRepeat(ctx context.Context, scheduleID int64, edit *model.SimpleToRepeatEdit, memberID int64) (*model.RepeatSchedule, error)
	ConvertRepeatToSimple(ctx context.Context, scheduleID int64, edit *model.RepeatToSimpleEdit, memberID int64) (*model.SimpleSchedule, error)
	DeleteSimpleSchedule(ctx context.Context, req *model.ScheduleDelete, memberID int64) (*model.ScheduleDeleteResult, error)
	DeleteRepeatSchedule(ctx context.Context, req *model.ScheduleDelete, memberID int64) (*model.ScheduleDeleteResult, error)
	MonthlySchedules(ctx context.Context, teamID int64, categoryType *model.CategoryType, memberID int64) ([]*model.ScheduleView, error)
	SimpleScheduleDetail(ctx context.Context, scheduleID, teamID, memberID int64) (*model.SimpleSchedule, error)
	RepeatScheduleDetail(ctx context.Context, scheduleID, teamID, memberID int64) (*model.RepeatSchedule, error)
}

type notifier interface {
	ScheduleDeleted(res *model.ScheduleDeleteResult)
}

func NewApi(
	logger *zap.SugaredLogger,
	randSource io.Reader,
	jwts jwtManager,
	tokenParser tokenParser,
	refreshTokens refreshTokenRepository,
	db database.PGX,
	members memberRepository,
	teams teamRepository,
	categories categoryRepository,
	schedules scheduleService,
	notifier notifier,
) (*Api, error) {
	a := &Api{
		logger:        logger,
		randSource:    randSource,
		jwts:          jwts,
		tokenParser:   tokenParser,
		refreshTokens: refreshTokens,
		db:            db,
		members:       members,
		teams:         teams,
		categories:    categories,
		schedules:     schedules,
		notifier:      notifier,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signin/google", a.signInGoogleHandler)
		r.Post("/refresh", a.refreshTokenHandler)
		r.Post("/logout", a.logoutMemberHandler)
	})

	r.With(a.auth).Route("/", func(r chi.Router) {
		r.With(a.memberCtx).Route("/member", func(r chi.Router) {
			r.Get("/", a.getMemberHandler)
		})

		r.Post("/teams", a.createTeamHandler)

		r.With(a.teamCtx).Route("/teams/{teamID}", func(r chi.Router) {
			r.Route("/categories", func(r chi.Router) {
				r.Post("/", a.createCategoryHandler)
				r.Get("/", a.getCategoriesHandler)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/monthly", a.getMonthlySchedulesHandler)

				r.Route("/simple", func(r chi.Router) {
					r.Post("/", a.createSimpleScheduleHandler)
					r.Get("/{scheduleID}", a.getSimpleScheduleHandler)
					r.Put("/{scheduleID}", a.editSimpleScheduleHandler)
					r.Put("/{scheduleID}/convert", a.convertSimpleScheduleHandler)
					r.Delete("/{scheduleID}", a.deleteSimpleScheduleHandler)
				})

				r.Route("/repeat", func(r chi.Router) {
					r.Post("/", a.createRepeatScheduleHandler)
					r.Get("/{scheduleID}", a.getRepeatScheduleHandler)
					r.Put("/{scheduleID}", a.editRepeatScheduleHandler)
					r.Put("/{scheduleID}/convert", a.convertRepeatScheduleHandler)
					r.Delete("/{scheduleID}", a.deleteRepeatScheduleHandler)
				})
			})
		})
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
