package chatserver

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/chatd/internal/chat/player"
	chatv1 "github.com/cory-johannsen/chatd/internal/chatserver/chatv1"
)

// directory resolves a player to their session for routing.
type directory interface {
	Lookup(id player.ID) (*player.Session, bool)
}

// StreamNotifier implements the registries' notification ports over the
// per-world-server link streams. Sends are fire-and-forget: a missing link or
// a full buffer drops the message with a debug log and never blocks the
// registry mutation that triggered it.
type StreamNotifier struct {
	mu    sync.RWMutex
	links map[string]chan *chatv1.ChatMessage

	players directory
	buffer  int
	logger  *zap.Logger
}

// NewStreamNotifier creates a notifier with no registered links.
//
// Precondition: buffer must be positive; logger must be non-nil.
func NewStreamNotifier(buffer int, logger *zap.Logger) *StreamNotifier {
	return &StreamNotifier{
		links:  make(map[string]chan *chatv1.ChatMessage),
		buffer: buffer,
		logger: logger,
	}
}

// SetDirectory injects the session lookup used to route direct sends.
// Called once at wiring time; the notifier is constructed before the session
// registry because the registry needs the notifier.
//
// Precondition: players must be non-nil.
func (n *StreamNotifier) SetDirectory(players directory) {
	n.players = players
}

// Register adds a world-server link and returns its outbound channel.
// The caller forwards channel messages onto the gRPC stream.
func (n *StreamNotifier) Register(linkID string) <-chan *chatv1.ChatMessage {
	ch := make(chan *chatv1.ChatMessage, n.buffer)
	n.mu.Lock()
	defer n.mu.Unlock()
	n.links[linkID] = ch
	return ch
}

// Unregister removes a world-server link. Messages already queued are
// discarded with the channel.
func (n *StreamNotifier) Unregister(linkID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.links, linkID)
}

// LinkCount returns the number of registered world-server links.
func (n *StreamNotifier) LinkCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.links)
}

func (n *StreamNotifier) sendTo(target player.ID, msg *chatv1.ChatMessage) {
	sess, ok := n.players.Lookup(target)
	if !ok {
		n.logger.Debug("dropping notice for offline player",
			zap.Uint64("player_id", uint64(target)),
		)
		return
	}
	msg.TargetPlayerId = uint64(target)

	n.mu.RLock()
	ch, ok := n.links[sess.LinkID]
	n.mu.RUnlock()
	if !ok {
		n.logger.Debug("dropping notice for unlinked world server",
			zap.String("link_id", sess.LinkID),
		)
		return
	}
	n.enqueue(ch, msg)
}

func (n *StreamNotifier) broadcast(msg *chatv1.ChatMessage) {
	n.mu.RLock()
	chans := make([]chan *chatv1.ChatMessage, 0, len(n.links))
	for _, ch := range n.links {
		chans = append(chans, ch)
	}
	n.mu.RUnlock()

	for _, ch := range chans {
		n.enqueue(ch, msg)
	}
}

func (n *StreamNotifier) enqueue(ch chan *chatv1.ChatMessage, msg *chatv1.ChatMessage) {
	select {
	case ch <- msg:
	default:
		n.logger.Debug("dropping notice for saturated world-server link")
	}
}

// SendFriendStatus implements player.Notifier.
func (n *StreamNotifier) SendFriendStatus(target, about player.ID, aboutName string, online, isBest bool) {
	n.sendTo(target, &chatv1.ChatMessage{
		Payload: &chatv1.ChatMessage_FriendStatus{FriendStatus: &chatv1.FriendStatusNotice{
			AboutPlayerId:   uint64(about),
			AboutPlayerName: aboutName,
			Online:          online,
			IsBestFriend:    isBest,
		}},
	})
}

// SendTeamOffWorldFlag implements player.Notifier. Position is zeroed.
func (n *StreamNotifier) SendTeamOffWorldFlag(target, departed player.ID) {
	n.sendTo(target, &chatv1.ChatMessage{
		Payload: &chatv1.ChatMessage_TeamOffWorld{TeamOffWorld: &chatv1.TeamOffWorldNotice{
			DepartedPlayerId: uint64(departed),
		}},
	})
}

// BroadcastMuteUpdate implements player.Notifier. Mute enforcement is
// distributed, so every world server hears about it.
func (n *StreamNotifier) BroadcastMuteUpdate(id player.ID, expiry time.Time) {
	var unix int64
	if !expiry.IsZero() {
		unix = expiry.Unix()
	}
	n.broadcast(&chatv1.ChatMessage{
		Payload: &chatv1.ChatMessage_MuteBroadcast{MuteBroadcast: &chatv1.MuteBroadcast{
			PlayerId:       uint64(id),
			MuteExpiryUnix: unix,
		}},
	})
}

// SendSystemMessage implements team.Notifier.
func (n *StreamNotifier) SendSystemMessage(target player.ID, message string) {
	n.sendTo(target, &chatv1.ChatMessage{
		Payload: &chatv1.ChatMessage_SystemMessage{SystemMessage: &chatv1.SystemMessageNotice{
			Text: message,
		}},
	})
}

// SendTeamInviteConfirm implements team.Notifier.
func (n *StreamNotifier) SendTeamInviteConfirm(target player.ID, invite bool, leaderID player.ID, leaderZone player.ZoneID, lootShared bool, leaderName string) {
	n.sendTo(target, &chatv1.ChatMessage{
		Payload: &chatv1.ChatMessage_TeamInviteConfirm{TeamInviteConfirm: &chatv1.TeamInviteConfirmNotice{
			Invite:       invite,
			LeaderId:     uint64(leaderID),
			LeaderZoneId: uint32(leaderZone),
			LootShared:   lootShared,
			LeaderName:   leaderName,
		}},
	})
}

// SendTeamSetLeader implements team.Notifier.
func (n *StreamNotifier) SendTeamSetLeader(target player.ID, leaderID player.ID) {
	n.sendTo(target, &chatv1.ChatMessage{
		Payload: &chatv1.ChatMessage_TeamSetLeader{TeamSetLeader: &chatv1.TeamSetLeaderNotice{
			LeaderId: uint64(leaderID),
		}},
	})
}

// SendTeamAddPlayer implements team.Notifier.
func (n *StreamNotifier) SendTeamAddPlayer(target player.ID, invite, local, zoneChange bool, memberID player.ID, memberName string, memberZone player.ZoneID) {
	n.sendTo(target, &chatv1.ChatMessage{
		Payload: &chatv1.ChatMessage_TeamAddPlayer{TeamAddPlayer: &chatv1.TeamAddPlayerNotice{
			Invite:       invite,
			Local:        local,
			ZoneChange:   zoneChange,
			MemberId:     uint64(memberID),
			MemberName:   memberName,
			MemberZoneId: uint32(memberZone),
		}},
	})
}

// SendTeamRemovePlayer implements team.Notifier.
func (n *StreamNotifier) SendTeamRemovePlayer(target player.ID, disband, kicked, leaving, local bool, newLeaderID, causingID player.ID, causingName string) {
	n.sendTo(target, &chatv1.ChatMessage{
		Payload: &chatv1.ChatMessage_TeamRemovePlayer{TeamRemovePlayer: &chatv1.TeamRemovePlayerNotice{
			Disband:           disband,
			Kicked:            kicked,
			Leaving:           leaving,
			Local:             local,
			NewLeaderId:       uint64(newLeaderID),
			CausingPlayerId:   uint64(causingID),
			CausingPlayerName: causingName,
		}},
	})
}

// SendTeamStatus implements team.Notifier.
func (n *StreamNotifier) SendTeamStatus(target player.ID, leaderID player.ID, leaderZone player.ZoneID, lootShared bool, leaderName string) {
	n.sendTo(target, &chatv1.ChatMessage{
		Payload: &chatv1.ChatMessage_TeamStatus{TeamStatus: &chatv1.TeamStatusNotice{
			LeaderId:     uint64(leaderID),
			LeaderZoneId: uint32(leaderZone),
			LootShared:   lootShared,
			LeaderName:   leaderName,
		}},
	})
}

// BroadcastTeamRoster implements team.Notifier.
func (n *StreamNotifier) BroadcastTeamRoster(teamID uint32, deleted bool, lootShared bool, members []player.ID) {
	roster := &chatv1.TeamRosterBroadcast{
		TeamId:  teamID,
		Deleted: deleted,
	}
	if !deleted {
		roster.LootShared = lootShared
		roster.MemberIds = make([]uint64, len(members))
		for i, m := range members {
			roster.MemberIds[i] = uint64(m)
		}
	}
	n.broadcast(&chatv1.ChatMessage{
		Payload: &chatv1.ChatMessage_TeamRoster{TeamRoster: roster},
	})
}
