package chatserver

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/chatd/internal/chat/player"
	"github.com/cory-johannsen/chatd/internal/chat/team"
	chatv1 "github.com/cory-johannsen/chatd/internal/chatserver/chatv1"
)

// LinkServer implements the gRPC ChatLinkService. Each world server holds one
// Link stream open; inbound messages become registry mutations and the
// notifier's outbound queue is drained back down the same stream.
type LinkServer struct {
	chatv1.UnimplementedChatLinkServiceServer
	service  *Service
	notifier *StreamNotifier
	logger   *zap.Logger
}

// NewLinkServer creates a LinkServer over the given service and notifier.
//
// Precondition: service, notifier, and logger must be non-nil.
func NewLinkServer(service *Service, notifier *StreamNotifier, logger *zap.Logger) *LinkServer {
	return &LinkServer{
		service:  service,
		notifier: notifier,
		logger:   logger,
	}
}

// Link implements the bidirectional streaming RPC. The stream is registered
// under a fresh link id that becomes the routing token for every session the
// world server reports. When the stream drops, the link's players are
// scheduled for removal rather than dropped, so a fast relink cancels their
// logout.
func (s *LinkServer) Link(stream chatv1.ChatLinkService_LinkServer) error {
	linkID := uuid.NewString()
	logger := s.logger.With(zap.String("link_id", linkID))

	out := s.notifier.Register(linkID)
	defer func() {
		s.notifier.Unregister(linkID)
		s.service.LinkDown(linkID)
		logger.Info("world server unlinked")
	}()

	logger.Info("world server linked")

	ctx := stream.Context()
	sendErr := make(chan error, 1)
	go func() {
		for {
			select {
			case msg := <-out:
				if err := stream.Send(msg); err != nil {
					sendErr <- err
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case err := <-sendErr:
			return err
		default:
		}

		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		s.dispatch(ctx, linkID, msg, logger)
	}
}

// dispatch maps one inbound message to a service call. Malformed or unknown
// messages are logged and dropped; no inbound message ever fails the stream.
func (s *LinkServer) dispatch(ctx context.Context, linkID string, msg *chatv1.WorldMessage, logger *zap.Logger) {
	switch p := msg.Payload.(type) {
	case *chatv1.WorldMessage_InsertPlayer:
		req := p.InsertPlayer
		first, err := s.service.InsertPlayer(ctx, linkID,
			player.ID(req.PlayerId), req.Name, player.ZoneID(req.ZoneId),
			unixTime(req.MuteExpiryUnix), req.PrivilegeLevel)
		if err != nil {
			logger.Warn("dropping insert player", zap.Error(err))
			return
		}
		logger.Debug("player inserted",
			zap.Uint64("player_id", req.PlayerId),
			zap.Bool("first_login", first),
		)

	case *chatv1.WorldMessage_ScheduleRemovePlayer:
		s.service.ScheduleRemovePlayer(player.ID(p.ScheduleRemovePlayer.PlayerId))

	case *chatv1.WorldMessage_MuteUpdate:
		req := p.MuteUpdate
		if err := s.service.MuteUpdate(player.ID(req.PlayerId), unixTime(req.MuteExpiryUnix)); err != nil {
			logger.Debug("dropping mute update", zap.Error(err))
		}

	case *chatv1.WorldMessage_CreateTeam:
		req := p.CreateTeam
		members := make([]player.ID, len(req.MemberIds))
		for i, id := range req.MemberIds {
			members[i] = player.ID(id)
		}
		if err := s.service.CreateTeam(player.ID(req.LeaderId), members, player.ZoneID(req.ZoneId)); err != nil {
			logger.Warn("dropping create team", zap.Error(err))
		}

	case *chatv1.WorldMessage_TeamLeave:
		if err := s.service.TeamLeave(player.ID(p.TeamLeave.PlayerId)); err != nil && !errors.Is(err, team.ErrNotMember) {
			logger.Debug("dropping team leave", zap.Error(err))
		}

	case *chatv1.WorldMessage_TeamKick:
		req := p.TeamKick
		if err := s.service.TeamKick(player.ID(req.LeaderId), player.ID(req.TargetId)); err != nil {
			logger.Debug("dropping team kick", zap.Error(err))
		}

	case *chatv1.WorldMessage_TeamPromote:
		req := p.TeamPromote
		if err := s.service.TeamPromote(player.ID(req.LeaderId), player.ID(req.NewLeaderId)); err != nil {
			logger.Debug("dropping team promote", zap.Error(err))
		}

	case *chatv1.WorldMessage_TeamLootToggle:
		req := p.TeamLootToggle
		if err := s.service.TeamLootToggle(player.ID(req.LeaderId), req.LootShared); err != nil {
			logger.Debug("dropping loot toggle", zap.Error(err))
		}

	case *chatv1.WorldMessage_TeamStatus:
		if err := s.service.TeamStatus(player.ID(p.TeamStatus.PlayerId)); err != nil {
			logger.Debug("dropping team status request", zap.Error(err))
		}

	default:
		logger.Warn("unrecognised world message")
	}
}

func unixTime(unix int64) time.Time {
	if unix == 0 {
		return time.Time{}
	}
	return time.Unix(unix, 0)
}
