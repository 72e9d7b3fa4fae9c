package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/klantsync/klantsync/internal/portal/domain"
	"github.com/klantsync/klantsync/internal/portal/store"
	"github.com/klantsync/klantsync/pkg/idx"
	"github.com/klantsync/klantsync/pkg/slogx"
)

type RelationService struct {
	Store store.Store
}

// Link ensures an edge exists between a client and a freelancer and returns
// it. Linking is idempotent: a second call for the same pair returns the
// original edge, and a lost insert race is recovered by re-fetch.
func (s *RelationService) Link(ctx context.Context, clientID, freelancerID string) (domain.Relation, error) {
	return linkClient(ctx, s.Store, clientID, freelancerID)
}

// linkClient carries the idempotent edge-insert shared by RelationService
// and the invite acceptance transaction. st may be a Tx-scoped store.
func linkClient(ctx context.Context, st store.Store, clientID, freelancerID string) (domain.Relation, error) {
	log := slogx.FromContext(ctx)

	// 1. Return the existing edge if the pair is already linked.
	rel, err := st.Relations().GetRelation(ctx, clientID, freelancerID)
	if err == nil {
		return rel, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to fetch relation", slog.Any("error", err))
		return domain.Relation{}, err
	}

	// 2. Insert a new edge.
	rel = domain.Relation{
		ID:           idx.New().String(),
		ClientID:     clientID,
		FreelancerID: freelancerID,
		CreatedAt:    time.Now().UTC(),
	}
	err = st.Relations().CreateRelation(ctx, rel)
	if err == nil {
		log.Info("client linked to freelancer",
			slog.String("relation_id", rel.ID),
			slog.String("client_id", clientID),
			slog.String("freelancer_id", freelancerID),
		)
		return rel, nil
	}

	// 3. A concurrent link for the same pair won the unique index; the edge
	// it wrote is just as good as ours.
	if errors.Is(err, store.ErrAlreadyExists) {
		return st.Relations().GetRelation(ctx, clientID, freelancerID)
	}

	log.Error("failed to create relation",
		slog.String("client_id", clientID),
		slog.String("freelancer_id", freelancerID),
		slog.Any("error", err),
	)
	return domain.Relation{}, err
}

// ClientsForFreelancer resolves the freelancer's linked client accounts,
// newest link first. Feeds the existing-client picker on project forms.
func (s *RelationService) ClientsForFreelancer(ctx context.Context, freelancerID string) ([]domain.User, error) {
	log := slogx.FromContext(ctx)

	rels, err := s.Store.Relations().ListRelationsByFreelancer(ctx, freelancerID)
	if err != nil {
		log.Error("failed to list relations", slog.Any("error", err))
		return nil, err
	}

	clients := make([]domain.User, 0, len(rels))
	for _, rel := range rels {
		u, err := s.Store.Users().GetUserByID(ctx, rel.ClientID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Edge survived a deleted account; skip it.
				continue
			}
			log.Error("failed to resolve linked client",
				slog.String("client_id", rel.ClientID),
				slog.Any("error", err),
			)
			return nil, err
		}
		clients = append(clients, u)
	}
	return clients, nil
}
