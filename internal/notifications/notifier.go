package notifications

import (
	"context"

	"github.com/teamplan/team-calendar-backend/internal/database"
	"github.com/teamplan/team-calendar-backend/internal/model"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

// Notifier fans schedule lifecycle events out to the participants that were
// assigned to the schedule. Delivery is decoupled from the request path
// through an internal queue.
type Notifier struct {
	db      database.PGX
	logger  *zap.SugaredLogger
	teams   participantsRepository
	members membersRepository
	queue   chan *model.ScheduleDeleteResult
}

type participantsRepository interface {
	GetParticipantsByIDs(ctx context.Context, q database.Queryable, ids []int64) ([]*model.Participant, error)
}

type membersRepository interface {
	GetMemberByID(ctx context.Context, q database.Queryable, id int64) (*model.Member, error)
}

func NewNotifier(
	db database.PGX,
	logger *zap.SugaredLogger,
	teams participantsRepository,
	members membersRepository,
) *Notifier {
	return &Notifier{
		db:      db,
		logger:  logger,
		teams:   teams,
		members: members,
		queue:   make(chan *model.ScheduleDeleteResult, 64),
	}
}

func (n *Notifier) Start(ctx context.Context) {
	done := make(chan bool)

	closer.Bind(func() {
		done <- true
	})

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case res := <-n.queue:
			n.notify(ctx, res)
		}
	}
}

// ScheduleDeleted enqueues a deletion notice. A full queue drops the notice
// instead of stalling the request.
func (n *Notifier) ScheduleDeleted(res *model.ScheduleDeleteResult) {
	select {
	case n.queue <- res:
	default:
		n.logger.Warnw("notification queue full, dropping notice", "title", res.Title)
	}
}

func (n *Notifier) notify(ctx context.Context, res *model.ScheduleDeleteResult) {
	recipients := make([]int64, 0, len(res.ParticipantsIDs))
	for _, id := range res.ParticipantsIDs {
		if id != res.RequesterID {
			recipients = append(recipients, id)
		}
	}

	if len(recipients) == 0 {
		return
	}

	participants, err := n.teams.GetParticipantsByIDs(ctx, n.db, recipients)
	if err != nil {
		n.logger.Errorw("failed to resolve notification recipients", "err", err)
		return
	}

	for _, p := range participants {
		member, err := n.members.GetMemberByID(ctx, n.db, p.MemberID)
		if err != nil {
			n.logger.Errorw("failed to resolve member", "participant_id", p.ID, "err", err)
			continue
		}

		n.logger.Infow("notification dispatched",
			"email", member.Email,
			"title", res.Title,
			"message", res.Message,
		)
	}
}
