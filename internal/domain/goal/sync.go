package goal

import (
	"context"

	"Cofrinho/internal/logger"

	"github.com/oklog/ulid/v2"
)

type StatusWriter interface {
	UpdateStatus(ctx context.Context, goalID, userID ulid.ULID, status GoalStatus) error
}

type TransitionRecorder interface {
	RecordTransition(from, to GoalStatus)
}

type Synchronizer struct {
	Writer   StatusWriter
	Resolver *StatusResolver
	Recorder TransitionRecorder
}

func NewSynchronizer(writer StatusWriter, resolver *StatusResolver, recorder TransitionRecorder) *Synchronizer {
	return &Synchronizer{
		Writer:   writer,
		Resolver: resolver,
		Recorder: recorder,
	}
}

// Sync grava o status derivado quando ele diverge do armazenado. A escrita e limitada
// por id da meta e do dono. Em caso de falha nenhuma meta e devolvida, pois o status
// corrigido nao foi persistido.
func (s *Synchronizer) Sync(ctx context.Context, g *Goal) (*Goal, error) {
	computed := s.Resolver.Resolve(g)
	if g.Status == computed {
		return g, nil
	}

	if err := s.Writer.UpdateStatus(ctx, g.Id, g.UserId, computed); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("goal_id", g.Id.String()).
		Str("from", string(g.Status)).
		Str("to", string(computed)).
		Msg("goal_status_synced")

	if s.Recorder != nil {
		s.Recorder.RecordTransition(g.Status, computed)
	}

	return g.WithStatus(computed), nil
}

func (s *Synchronizer) SyncAll(ctx context.Context, goals []*Goal) ([]*Goal, error) {
	out := make([]*Goal, 0, len(goals))
	for _, g := range goals {
		synced, err := s.Sync(ctx, g)
		if err != nil {
			return nil, err
		}
		out = append(out, synced)
	}
	return out, nil
}
