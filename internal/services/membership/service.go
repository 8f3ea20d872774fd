package membership

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dvigun/beerbot/internal/common/clock"
	"github.com/dvigun/beerbot/internal/models"
	groupadminRepo "github.com/dvigun/beerbot/internal/repositories/groupadmin"
)

// service implements the Service interface
type service struct {
	groupAdminRepo groupadminRepo.Repository
	transport      Transport
	clock          clock.Clock
}

// NewService creates a new membership tracker
func NewService(groupAdminRepository groupadminRepo.Repository, transport Transport, clk clock.Clock) (*service, error) {
	if groupAdminRepository == nil {
		return nil, errors.New("group admin repository cannot be nil")
	}

	if transport == nil {
		return nil, errors.New("transport cannot be nil")
	}

	if clk == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &service{
		groupAdminRepo: groupAdminRepository,
		transport:      transport,
		clock:          clk,
	}, nil
}

// HandleChange processes one membership change notification
func (s *service) HandleChange(ctx context.Context, input *ChangeInput) (*ChangeOutput, error) {
	if input == nil || input.ChatID == 0 {
		return nil, errors.New("input and chat ID cannot be empty")
	}

	if !input.SubjectIsBot {
		return &ChangeOutput{Action: ActionNone}, nil
	}

	promoted := !isAdminStatus(input.OldStatus) && isAdminStatus(input.NewStatus)
	demoted := isAdminStatus(input.OldStatus) && !isAdminStatus(input.NewStatus)
	if !promoted && !demoted {
		log.Printf("membership: ignoring %s -> %s change in chat %d", input.OldStatus, input.NewStatus, input.ChatID)
		return &ChangeOutput{Action: ActionNone}, nil
	}

	// The change notification is untrusted: verify the acting human
	// currently holds admin rights with a live lookup. A failing lookup
	// (the bot may lack permissions) aborts silently.
	actorStatus, err := s.transport.GetChatMember(ctx, input.ChatID, input.ActorID)
	if err != nil {
		log.Printf("membership: cannot verify actor %d in chat %d: %v", input.ActorID, input.ChatID, err)
		return &ChangeOutput{Action: ActionNone}, nil
	}
	if !isAdminStatus(actorStatus) {
		log.Printf("membership: actor %d in chat %d is %s, ignoring change", input.ActorID, input.ChatID, actorStatus)
		return &ChangeOutput{Action: ActionNone}, nil
	}

	if promoted {
		out, err := s.groupAdminRepo.CreateOrGet(ctx, &groupadminRepo.CreateOrGetInput{
			Admin: &models.GroupAdmin{
				ChatID:    input.ChatID,
				UserID:    input.ActorID,
				CreatedAt: s.clock.Now(),
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to record promotion in chat %d: %w", input.ChatID, err)
		}
		if out.AlreadyExisted {
			log.Printf("membership: chat %d already has an admin record, duplicate promotion ignored", input.ChatID)
		}
		return &ChangeOutput{Action: ActionPromoted}, nil
	}

	deleted, err := s.groupAdminRepo.Delete(ctx, &groupadminRepo.DeleteInput{ChatID: input.ChatID})
	if err != nil {
		return nil, fmt.Errorf("failed to remove admin record for chat %d: %w", input.ChatID, err)
	}

	return &ChangeOutput{Action: ActionDemoted, AdminRemoved: deleted.Deleted}, nil
}

// isAdminStatus reports whether a platform status carries admin rights
func isAdminStatus(status string) bool {
	return status == StatusAdministrator || status == StatusCreator
}
