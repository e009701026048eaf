// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: chat/v1/chat.proto

package chatv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// WorldMessage is one inbound operation from a world server.
type WorldMessage struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Payload:
	//
	//	*WorldMessage_InsertPlayer
	//	*WorldMessage_ScheduleRemovePlayer
	//	*WorldMessage_MuteUpdate
	//	*WorldMessage_CreateTeam
	//	*WorldMessage_TeamLeave
	//	*WorldMessage_TeamKick
	//	*WorldMessage_TeamPromote
	//	*WorldMessage_TeamLootToggle
	//	*WorldMessage_TeamStatus
	Payload       isWorldMessage_Payload `protobuf_oneof:"payload"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WorldMessage) Reset() {
	*x = WorldMessage{}
	mi := &file_chat_v1_chat_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WorldMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WorldMessage) ProtoMessage() {}

func (x *WorldMessage) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WorldMessage.ProtoReflect.Descriptor instead.
func (*WorldMessage) Descriptor() ([]byte, []int) {
	return file_chat_v1_chat_proto_rawDescGZIP(), []int{0}
}

func (x *WorldMessage) GetPayload() isWorldMessage_Payload {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *WorldMessage) GetInsertPlayer() *InsertPlayerRequest {
	if x != nil {
		if x, ok := x.Payload.(*WorldMessage_InsertPlayer); ok {
			return x.InsertPlayer
		}
	}
	return nil
}

func (x *WorldMessage) GetScheduleRemovePlayer() *ScheduleRemovePlayerRequest {
	if x != nil {
		if x, ok := x.Payload.(*WorldMessage_ScheduleRemovePlayer); ok {
			return x.ScheduleRemovePlayer
		}
	}
	return nil
}

func (x *WorldMessage) GetMuteUpdate() *MuteUpdateRequest {
	if x != nil {
		if x, ok := x.Payload.(*WorldMessage_MuteUpdate); ok {
			return x.MuteUpdate
		}
	}
	return nil
}

func (x *WorldMessage) GetCreateTeam() *CreateTeamRequest {
	if x != nil {
		if x, ok := x.Payload.(*WorldMessage_CreateTeam); ok {
			return x.CreateTeam
		}
	}
	return nil
}

func (x *WorldMessage) GetTeamLeave() *TeamLeaveRequest {
	if x != nil {
		if x, ok := x.Payload.(*WorldMessage_TeamLeave); ok {
			return x.TeamLeave
		}
	}
	return nil
}

func (x *WorldMessage) GetTeamKick() *TeamKickRequest {
	if x != nil {
		if x, ok := x.Payload.(*WorldMessage_TeamKick); ok {
			return x.TeamKick
		}
	}
	return nil
}

func (x *WorldMessage) GetTeamPromote() *TeamPromoteRequest {
	if x != nil {
		if x, ok := x.Payload.(*WorldMessage_TeamPromote); ok {
			return x.TeamPromote
		}
	}
	return nil
}

func (x *WorldMessage) GetTeamLootToggle() *TeamLootToggleRequest {
	if x != nil {
		if x, ok := x.Payload.(*WorldMessage_TeamLootToggle); ok {
			return x.TeamLootToggle
		}
	}
	return nil
}

func (x *WorldMessage) GetTeamStatus() *TeamStatusRequest {
	if x != nil {
		if x, ok := x.Payload.(*WorldMessage_TeamStatus); ok {
			return x.TeamStatus
		}
	}
	return nil
}

type isWorldMessage_Payload interface {
	isWorldMessage_Payload()
}

type WorldMessage_InsertPlayer struct {
	InsertPlayer *InsertPlayerRequest `protobuf:"bytes,1,opt,name=insert_player,json=insertPlayer,proto3,oneof"`
}

type WorldMessage_ScheduleRemovePlayer struct {
	ScheduleRemovePlayer *ScheduleRemovePlayerRequest `protobuf:"bytes,2,opt,name=schedule_remove_player,json=scheduleRemovePlayer,proto3,oneof"`
}

type WorldMessage_MuteUpdate struct {
	MuteUpdate *MuteUpdateRequest `protobuf:"bytes,3,opt,name=mute_update,json=muteUpdate,proto3,oneof"`
}

type WorldMessage_CreateTeam struct {
	CreateTeam *CreateTeamRequest `protobuf:"bytes,4,opt,name=create_team,json=createTeam,proto3,oneof"`
}

type WorldMessage_TeamLeave struct {
	TeamLeave *TeamLeaveRequest `protobuf:"bytes,5,opt,name=team_leave,json=teamLeave,proto3,oneof"`
}

type WorldMessage_TeamKick struct {
	TeamKick *TeamKickRequest `protobuf:"bytes,6,opt,name=team_kick,json=teamKick,proto3,oneof"`
}

type WorldMessage_TeamPromote struct {
	TeamPromote *TeamPromoteRequest `protobuf:"bytes,7,opt,name=team_promote,json=teamPromote,proto3,oneof"`
}

type WorldMessage_TeamLootToggle struct {
	TeamLootToggle *TeamLootToggleRequest `protobuf:"bytes,8,opt,name=team_loot_toggle,json=teamLootToggle,proto3,oneof"`
}

type WorldMessage_TeamStatus struct {
	TeamStatus *TeamStatusRequest `protobuf:"bytes,9,opt,name=team_status,json=teamStatus,proto3,oneof"`
}

func (*WorldMessage_InsertPlayer) isWorldMessage_Payload() {}

func (*WorldMessage_ScheduleRemovePlayer) isWorldMessage_Payload() {}

func (*WorldMessage_MuteUpdate) isWorldMessage_Payload() {}

func (*WorldMessage_CreateTeam) isWorldMessage_Payload() {}

func (*WorldMessage_TeamLeave) isWorldMessage_Payload() {}

func (*WorldMessage_TeamKick) isWorldMessage_Payload() {}

func (*WorldMessage_TeamPromote) isWorldMessage_Payload() {}

func (*WorldMessage_TeamLootToggle) isWorldMessage_Payload() {}

func (*WorldMessage_TeamStatus) isWorldMessage_Payload() {}

type InsertPlayerRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	PlayerId uint64                 `protobuf:"varint,1,opt,name=player_id,json=playerId,proto3" json:"player_id,omitempty"`
	// name is bounded at 32 bytes; longer names are malformed and dropped.
	Name   string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	ZoneId uint32 `protobuf:"varint,3,opt,name=zone_id,json=zoneId,proto3" json:"zone_id,omitempty"`
	// mute_expiry_unix of 0 means unmuted.
	MuteExpiryUnix int64 `protobuf:"varint,4,opt,name=mute_expiry_unix,json=muteExpiryUnix,proto3" json:"mute_expiry_unix,omitempty"`
	PrivilegeLevel int32 `protobuf:"varint,5,opt,name=privilege_level,json=privilegeLevel,proto3" json:"privilege_level,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *InsertPlayerRequest) Reset() {
	*x = InsertPlayerRequest{}
	mi := &file_chat_v1_chat_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InsertPlayerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InsertPlayerRequest) ProtoMessage() {}

func (x *InsertPlayerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InsertPlayerRequest.ProtoReflect.Descriptor instead.
func (*InsertPlayerRequest) Descriptor() ([]byte, []int) {
	return file_chat_v1_chat_proto_rawDescGZIP(), []int{1}
}

func (x *InsertPlayerRequest) GetPlayerId() uint64 {
	if x != nil {
		return x.PlayerId
	}
	return 0
}

func (x *InsertPlayerRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *InsertPlayerRequest) GetZoneId() uint32 {
	if x != nil {
		return x.ZoneId
	}
	return 0
}

func (x *InsertPlayerRequest) GetMuteExpiryUnix() int64 {
	if x != nil {
		return x.MuteExpiryUnix
	}
	return 0
}

func (x *InsertPlayerRequest) GetPrivilegeLevel() int32 {
	if x != nil {
		return x.PrivilegeLevel
	}
	return 0
}

type ScheduleRemovePlayerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PlayerId      uint64                 `protobuf:"varint,1,opt,name=player_id,json=playerId,proto3" json:"player_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScheduleRemovePlayerRequest) Reset() {
	*x = ScheduleRemovePlayerRequest{}
	mi := &file_chat_v1_chat_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScheduleRemovePlayerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScheduleRemovePlayerRequest) ProtoMessage() {}

func (x *ScheduleRemovePlayerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScheduleRemovePlayerRequest.ProtoReflect.Descriptor instead.
func (*ScheduleRemovePlayerRequest) Descriptor() ([]byte, []int) {
	return file_chat_v1_chat_proto_rawDescGZIP(), []int{2}
}

func (x *ScheduleRemovePlayerRequest) GetPlayerId() uint64 {
	if x != nil {
		return x.PlayerId
	}
	return 0
}

type MuteUpdateRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	PlayerId       uint64                 `protobuf:"varint,1,opt,name=player_id,json=playerId,proto3" json:"player_id,omitempty"`
	MuteExpiryUnix int64                  `protobuf:"varint,2,opt,name=mute_expiry_unix,json=muteExpiryUnix,proto3" json:"mute_expiry_unix,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *MuteUpdateRequest) Reset() {
	*x = MuteUpdateRequest{}
	mi := &file_chat_v1_chat_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MuteUpdateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MuteUpdateRequest) ProtoMessage() {}

func (x *MuteUpdateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MuteUpdateRequest.ProtoReflect.Descriptor instead.
func (*MuteUpdateRequest) Descriptor() ([]byte, []int) {
	return file_chat_v1_chat_proto_rawDescGZIP(), []int{3}
}

func (x *MuteUpdateRequest) GetPlayerId() uint64 {
	if x != nil {
		return x.PlayerId
	}
	return 0
}

func (x *MuteUpdateRequest) GetMuteExpiryUnix() int64 {
	if x != nil {
		return x.MuteExpiryUnix
	}
	return 0
}

type CreateTeamRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	LeaderId uint64                 `protobuf:"varint,1,opt,name=leader_id,json=leaderId,proto3" json:"leader_id,omitempty"`
	// member_ids lists at most 3 additional players; the leader is implicit.
	MemberIds     []uint64 `protobuf:"varint,2,rep,packed,name=member_ids,json=memberIds,proto3" json:"member_ids,omitempty"`
	ZoneId        uint32   `protobuf:"varint,3,opt,name=zone_id,json=zoneId,proto3" json:"zone_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateTeamRequest) Reset() {
	*x = CreateTeamRequest{}
	mi := &file_chat_v1_chat_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateTeamRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateTeamRequest) ProtoMessage() {}

func (x *CreateTeamRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateTeamRequest.ProtoReflect.Descriptor instead.
func (*CreateTeamRequest) Descriptor() ([]byte, []int) {
	return file_chat_v1_chat_proto_rawDescGZIP(), []int{4}
}

func (x *CreateTeamRequest) GetLeaderId() uint64 {
	if x != nil {
		return x.LeaderId
	}
	return 0
}

func (x *CreateTeamRequest) GetMemberIds() []uint64 {
	if x != nil {
		return x.MemberIds
	}
	return nil
}

func (x *CreateTeamRequest) GetZoneId() uint32 {
	if x != nil {
		return x.ZoneId
	}
	return 0
}

type TeamLeaveRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PlayerId      uint64                 `protobuf:"varint,1,opt,name=player_id,json=playerId,proto3" json:"player_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TeamLeaveRequest) Reset() {
	*x = TeamLeaveRequest{}
	mi := &file_chat_v1_chat_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TeamLeaveRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TeamLeaveRequest) ProtoMessage() {}

func (x *TeamLeaveRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TeamLeaveRequest.ProtoReflect.Descriptor instead.
func (*TeamLeaveRequest) Descriptor() ([]byte, []int) {
	return file_chat_v1_chat_proto_rawDescGZIP(), []int{5}
}

func (x *TeamLeaveRequest) GetPlayerId() uint64 {
	if x != nil {
		return x.PlayerId
	}
	return 0
}

type TeamKickRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LeaderId      uint64                 `protobuf:"varint,1,opt,name=leader_id,json=leaderId,proto3" json:"leader_id,omitempty"`
	TargetId      uint64                 `protobuf:"varint,2,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TeamKickRequest) Reset() {
	*x = TeamKickRequest{}
	mi := &file_chat_v1_chat_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TeamKickRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TeamKickRequest) ProtoMessage() {}

func (x *TeamKickRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TeamKickRequest.ProtoReflect.Descriptor instead.
func (*TeamKickRequest) Descriptor() ([]byte, []int) {
	return file_chat_v1_chat_proto_rawDescGZIP(), []int{6}
}

func (x *TeamKickRequest) GetLeaderId() uint64 {
	if x != nil {
		return x.LeaderId
	}
	return 0
}

func (x *TeamKickRequest) GetTargetId() uint64 {
	if x != nil {
		return x.TargetId
	}
	return 0
}

type TeamPromoteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LeaderId      uint64                 `protobuf:"varint,1,opt,name=leader_id,json=leaderId,proto3" json:"leader_id,omitempty"`
	NewLeaderId   uint64                 `protobuf:"varint,2,opt,name=new_leader_id,json=newLeaderId,proto3" json:"new_leader_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TeamPromoteRequest) Reset() {
	*x = TeamPromoteRequest{}
	mi := &file_chat_v1_chat_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TeamPromoteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TeamPromoteRequest) ProtoMessage() {}

func (x *TeamPromoteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TeamPromoteRequest.ProtoReflect.Descriptor instead.
func (*TeamPromoteRequest) Descriptor() ([]byte, []int) {
	return file_chat_v1_chat_proto_rawDescGZIP(), []int{7}
}

func (x *TeamPromoteRequest) GetLeaderId() uint64 {
	if x != nil {
		return x.LeaderId
	}
	return 0
}

func (x *TeamPromoteRequest) GetNewLeaderId() uint64 {
	if x != nil {
		return x.NewLeaderId
	}
	return 0
}

type TeamLootToggleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LeaderId      uint64                 `protobuf:"varint,1,opt,name=leader_id,json=leaderId,proto3" json:"leader_id,omitempty"`
	LootShared    bool                   `protobuf:"varint,2,opt,name=loot_shared,json=lootShared,proto3" json:"loot_shared,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TeamLootToggleRequest) Reset() {
	*x = TeamLootToggleRequest{}
	mi := &file_chat_v1_chat_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TeamLootToggleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TeamLootToggleRequest) ProtoMessage() {}

func (x *TeamLootToggleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TeamLootToggleRequest.ProtoReflect.Descriptor instead.
func (*TeamLootToggleRequest) Descriptor() ([]byte, []int) {
	return file_chat_v1_chat_proto_rawDescGZIP(), []int{8}
}

func (x *TeamLootToggleRequest) GetLeaderId() uint64 {
	if x != nil {
		return x.LeaderId
	}
	return 0
}

func (x *TeamLootToggleRequest) GetLootShared() bool {
	if x != nil {
		return x.LootShared
	}
	return false
}

type TeamStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PlayerId      uint64                 `protobuf:"varint,1,opt,name=player_id,json=playerId,proto3" json:"player_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TeamStatusRequest) Reset() {
	*x = TeamStatusRequest{}
	mi := &file_chat_v1_chat_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TeamStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TeamStatusRequest) ProtoMessage() {}

func (x *TeamStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TeamStatusRequest.ProtoReflect.Descriptor instead.
func (*TeamStatusRequest) Descriptor() ([]byte, []int) {
	return file_chat_v1_chat_proto_rawDescGZIP(), []int{9}
}

func (x *TeamStatusRequest) GetPlayerId() uint64 {
	if x != nil {
		return x.PlayerId
	}
	return 0
}

// ChatMessage is one outbound notice from the chat server.
type ChatMessage struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// target_player_id routes the notice; 0 marks a broadcast addressed to
	// every world server.
	TargetPlayerId uint64 `protobuf:"varint,1,opt,name=target_player_id,json=targetPlayerId,proto3" json:"target_player_id,omitempty"`
	// Types that are valid to be assigned to Payload:
	//
	//	*ChatMessage_FriendStatus
	//	*ChatMessage_TeamOffWorld
	//	*ChatMessage_MuteBroadcast
	//	*ChatMessage_TeamInviteConfirm
	//	*ChatMessage_TeamSetLeader
	//	*ChatMessage_TeamAddPlayer
	//	*ChatMessage_TeamRemovePlayer
	//	*ChatMessage_TeamRoster
	//	*ChatMessage_SystemMessage
	//	*ChatMessage_TeamStatus
	Payload       isChatMessage_Payload `protobuf_oneof:"payload"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatMessage) Reset() {
	*x = ChatMessage{}
	mi := &file_chat_v1_chat_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatMessage) ProtoMessage() {}

func (x *ChatMessage) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatMessage.ProtoReflect.Descriptor instead.
func (*ChatMessage) Descriptor() ([]byte, []int) {
	return file_chat_v1_chat_proto_rawDescGZIP(), []int{10}
}

func (x *ChatMessage) GetTargetPlayerId() uint64 {
	if x != nil {
		return x.TargetPlayerId
	}
	return 0
}

func (x *ChatMessage) GetPayload() isChatMessage_Payload {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *ChatMessage) GetFriendStatus() *FriendStatusNotice {
	if x != nil {
		if x, ok := x.Payload.(*ChatMessage_FriendStatus); ok {
			return x.FriendStatus
		}
	}
	return nil
}

func (x *ChatMessage) GetTeamOffWorld() *TeamOffWorldNotice {
	if x != nil {
		if x, ok := x.Payload.(*ChatMessage_TeamOffWorld); ok {
			return x.TeamOffWorld
		}
	}
	return nil
}

func (x *ChatMessage) GetMuteBroadcast() *MuteBroadcast {
	if x != nil {
		if x, ok := x.Payload.(*ChatMessage_MuteBroadcast); ok {
			return x.MuteBroadcast
		}
	}
	return nil
}

func (x *ChatMessage) GetTeamInviteConfirm() *TeamInviteConfirmNotice {
	if x != nil {
		if x, ok := x.Payload.(*ChatMessage_TeamInviteConfirm); ok {
			return x.TeamInviteConfirm
		}
	}
	return nil
}

func (x *ChatMessage) GetTeamSetLeader() *TeamSetLeaderNotice {
	if x != nil {
		if x, ok := x.Payload.(*ChatMessage_TeamSetLeader); ok {
			return x.TeamSetLeader
		}
	}
	return nil
}

func (x *ChatMessage) GetTeamAddPlayer() *TeamAddPlayerNotice {
	if x != nil {
		if x, ok := x.Payload.(*ChatMessage_TeamAddPlayer); ok {
			return x.TeamAddPlayer
		}
	}
	return nil
}

func (x *ChatMessage) GetTeamRemovePlayer() *TeamRemovePlayerNotice {
	if x != nil {
		if x, ok := x.Payload.(*ChatMessage_TeamRemovePlayer); ok {
			return x.TeamRemovePlayer
		}
	}
	return nil
}

func (x *ChatMessage) GetTeamRoster() *TeamRosterBroadcast {
	if x != nil {
		if x, ok := x.Payload.(*ChatMessage_TeamRoster); ok {
			return x.TeamRoster
		}
	}
	return nil
}

func (x *ChatMessage) GetSystemMessage() *SystemMessageNotice {
	if x != nil {
		if x, ok := x.Payload.(*ChatMessage_SystemMessage); ok {
			return x.SystemMessage
		}
	}
	return nil
}

func (x *ChatMessage) GetTeamStatus() *TeamStatusNotice {
	if x != nil {
		if x, ok := x.Payload.(*ChatMessage_TeamStatus); ok {
			return x.TeamStatus
		}
	}
	return nil
}

type isChatMessage_Payload interface {
	isChatMessage_Payload()
}

type ChatMessage_FriendStatus struct {
	FriendStatus *FriendStatusNotice `protobuf:"bytes,2,opt,name=friend_status,json=friendStatus,proto3,oneof"`
}

type ChatMessage_TeamOffWorld struct {
	TeamOffWorld *TeamOffWorldNotice `protobuf:"bytes,3,opt,name=team_off_world,json=teamOffWorld,proto3,oneof"`
}

type ChatMessage_MuteBroadcast struct {
	MuteBroadcast *MuteBroadcast `protobuf:"bytes,4,opt,name=mute_broadcast,json=muteBroadcast,proto3,oneof"`
}

type ChatMessage_TeamInviteConfirm struct {
	TeamInviteConfirm *TeamInviteConfirmNotice `protobuf:"bytes,5,opt,name=team_invite_confirm,json=teamInviteConfirm,proto3,oneof"`
}

type ChatMessage_TeamSetLeader struct {
	TeamSetLeader *TeamSetLeaderNotice `protobuf:"bytes,6,opt,name=team_set_leader,json=teamSetLeader,proto3,oneof"`
}

type ChatMessage_TeamAddPlayer struct {
	TeamAddPlayer *TeamAddPlayerNotice `protobuf:"bytes,7,opt,name=team_add_player,json=teamAddPlayer,proto3,oneof"`
}

type ChatMessage_TeamRemovePlayer struct {
	TeamRemovePlayer *TeamRemovePlayerNotice `protobuf:"bytes,8,opt,name=team_remove_player,json=teamRemovePlayer,proto3,oneof"`
}

type ChatMessage_TeamRoster struct {
	TeamRoster *TeamRosterBroadcast `protobuf:"bytes,9,opt,name=team_roster,json=teamRoster,proto3,oneof"`
}

type ChatMessage_SystemMessage struct {
	SystemMessage *SystemMessageNotice `protobuf:"bytes,10,opt,name=system_message,json=systemMessage,proto3,oneof"`
}

type ChatMessage_TeamStatus struct {
	TeamStatus *TeamStatusNotice `protobuf:"bytes,11,opt,name=team_status,json=teamStatus,proto3,oneof"`
}

func (*ChatMessage_FriendStatus) isChatMessage_Payload() {}

func (*ChatMessage_TeamOffWorld) isChatMessage_Payload() {}

func (*ChatMessage_MuteBroadcast) isChatMessage_Payload() {}

func (*ChatMessage_TeamInviteConfirm) isChatMessage_Payload() {}

func (*ChatMessage_TeamSetLeader) isChatMessage_Payload() {}

func (*ChatMessage_TeamAddPlayer) isChatMessage_Payload() {}

func (*ChatMessage_TeamRemovePlayer) isChatMessage_Payload() {}

func (*ChatMessage_TeamRoster) isChatMessage_Payload() {}

func (*ChatMessage_SystemMessage) isChatMessage_Payload() {}

func (*ChatMessage_TeamStatus) isChatMessage_Payload() {}

type FriendStatusNotice struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	AboutPlayerId   uint64                 `protobuf:"varint,1,opt,name=about_player_id,json=aboutPlayerId,proto3" json:"about_player_id,omitempty"`
	AboutPlayerName string                 `protobuf:"bytes,2,opt,name=about_player_name,json=aboutPlayerName,proto3" json:"about_player_name,omitempty"`
	Online          bool                   `protobuf:"varint,3,opt,name=online,proto3" json:"online,omitempty"`
	IsBestFriend    bool                   `protobuf:"varint,4,opt,name=is_best_friend,json=isBestFriend,proto3" json:"is_best_friend,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *FriendStatusNotice) Reset() {
	*x = FriendStatusNotice{}
	mi := &file_chat_v1_chat_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FriendStatusNotice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FriendStatusNotice) ProtoMessage() {}

func (x *FriendStatusNotice) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FriendStatusNotice.ProtoReflect.Descriptor instead.
func (*FriendStatusNotice) Descriptor() ([]byte, []int) {
	return file_chat_v1_chat_proto_rawDescGZIP(), []int{11}
}

func (x *FriendStatusNotice) GetAboutPlayerId() uint64 {
	if x != nil {
		return x.AboutPlayerId
	}
	return 0
}

func (x *FriendStatusNotice) GetAboutPlayerName() string {
	if x != nil {
		return x.AboutPlayerName
	}
	return ""
}

func (x *FriendStatusNotice) GetOnline() bool {
	if x != nil {
		return x.Online
	}
	return false
}

func (x *FriendStatusNotice) GetIsBestFriend() bool {
	if x != nil {
		return x.IsBestFriend
	}
	return false
}

type TeamOffWorldNotice struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	DepartedPlayerId uint64                 `protobuf:"varint,1,opt,name=departed_player_id,json=departedPlayerId,proto3" json:"departed_player_id,omitempty"`
	// Position is zeroed when a teammate's world connection drops.
	X             float32 `protobuf:"fixed32,2,opt,name=x,proto3" json:"x,omitempty"`
	Y             float32 `protobuf:"fixed32,3,opt,name=y,proto3" json:"y,omitempty"`
	Z             float32 `protobuf:"fixed32,4,opt,name=z,proto3" json:"z,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TeamOffWorldNotice) Reset() {
	*x = TeamOffWorldNotice{}
	mi := &file_chat_v1_chat_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TeamOffWorldNotice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TeamOffWorldNotice) ProtoMessage() {}

func (x *TeamOffWorldNotice) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TeamOffWorldNotice.ProtoReflect.Descriptor instead.
func (*TeamOffWorldNotice) Descriptor() ([]byte, []int) {
	return file_chat_v1_chat_proto_rawDescGZIP(), []int{12}
}

func (x *TeamOffWorldNotice) GetDepartedPlayerId() uint64 {
	if x != nil {
		return x.DepartedPlayerId
	}
	return 0
}

func (x *TeamOffWorldNotice) GetX() float32 {
	if x != nil {
		return x.X
	}
	return 0
}

func (x *TeamOffWorldNotice) GetY() float32 {
	if x != nil {
		return x.Y
	}
	return 0
}

func (x *TeamOffWorldNotice) GetZ() float32 {
	if x != nil {
		return x.Z
	}
	return 0
}

type MuteBroadcast struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	PlayerId       uint64                 `protobuf:"varint,1,opt,name=player_id,json=playerId,proto3" json:"player_id,omitempty"`
	MuteExpiryUnix int64                  `protobuf:"varint,2,opt,name=mute_expiry_unix,json=muteExpiryUnix,proto3" json:"mute_expiry_unix,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *MuteBroadcast) Reset() {
	*x = MuteBroadcast{}
	mi := &file_chat_v1_chat_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MuteBroadcast) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MuteBroadcast) ProtoMessage() {}

func (x *MuteBroadcast) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MuteBroadcast.ProtoReflect.Descriptor instead.
func (*MuteBroadcast) Descriptor() ([]byte, []int) {
	return file_chat_v1_chat_proto_rawDescGZIP(), []int{13}
}

func (x *MuteBroadcast) GetPlayerId() uint64 {
	if x != nil {
		return x.PlayerId
	}
	return 0
}

func (x *MuteBroadcast) GetMuteExpiryUnix() int64 {
	if x != nil {
		return x.MuteExpiryUnix
	}
	return 0
}

type TeamInviteConfirmNotice struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invite        bool                   `protobuf:"varint,1,opt,name=invite,proto3" json:"invite,omitempty"`
	LeaderId      uint64                 `protobuf:"varint,2,opt,name=leader_id,json=leaderId,proto3" json:"leader_id,omitempty"`
	LeaderZoneId  uint32                 `protobuf:"varint,3,opt,name=leader_zone_id,json=leaderZoneId,proto3" json:"leader_zone_id,omitempty"`
	LootShared    bool                   `protobuf:"varint,4,opt,name=loot_shared,json=lootShared,proto3" json:"loot_shared,omitempty"`
	LeaderName    string                 `protobuf:"bytes,5,opt,name=leader_name,json=leaderName,proto3" json:"leader_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TeamInviteConfirmNotice) Reset() {
	*x = TeamInviteConfirmNotice{}
	mi := &file_chat_v1_chat_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TeamInviteConfirmNotice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TeamInviteConfirmNotice) ProtoMessage() {}

func (x *TeamInviteConfirmNotice) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TeamInviteConfirmNotice.ProtoReflect.Descriptor instead.
func (*TeamInviteConfirmNotice) Descriptor() ([]byte, []int) {
	return file_chat_v1_chat_proto_rawDescGZIP(), []int{14}
}

func (x *TeamInviteConfirmNotice) GetInvite() bool {
	if x != nil {
		return x.Invite
	}
	return false
}

func (x *TeamInviteConfirmNotice) GetLeaderId() uint64 {
	if x != nil {
		return x.LeaderId
	}
	return 0
}

func (x *TeamInviteConfirmNotice) GetLeaderZoneId() uint32 {
	if x != nil {
		return x.LeaderZoneId
	}
	return 0
}

func (x *TeamInviteConfirmNotice) GetLootShared() bool {
	if x != nil {
		return x.LootShared
	}
	return false
}

func (x *TeamInviteConfirmNotice) GetLeaderName() string {
	if x != nil {
		return x.LeaderName
	}
	return ""
}

type TeamSetLeaderNotice struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// leader_id of 0 signals a local team with no externally visible leader.
	LeaderId      uint64 `protobuf:"varint,1,opt,name=leader_id,json=leaderId,proto3" json:"leader_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TeamSetLeaderNotice) Reset() {
	*x = TeamSetLeaderNotice{}
	mi := &file_chat_v1_chat_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TeamSetLeaderNotice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TeamSetLeaderNotice) ProtoMessage() {}

func (x *TeamSetLeaderNotice) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TeamSetLeaderNotice.ProtoReflect.Descriptor instead.
func (*TeamSetLeaderNotice) Descriptor() ([]byte, []int) {
	return file_chat_v1_chat_proto_rawDescGZIP(), []int{15}
}

func (x *TeamSetLeaderNotice) GetLeaderId() uint64 {
	if x != nil {
		return x.LeaderId
	}
	return 0
}

type TeamAddPlayerNotice struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invite        bool                   `protobuf:"varint,1,opt,name=invite,proto3" json:"invite,omitempty"`
	Local         bool                   `protobuf:"varint,2,opt,name=local,proto3" json:"local,omitempty"`
	ZoneChange    bool                   `protobuf:"varint,3,opt,name=zone_change,json=zoneChange,proto3" json:"zone_change,omitempty"`
	MemberId      uint64                 `protobuf:"varint,4,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	MemberName    string                 `protobuf:"bytes,5,opt,name=member_name,json=memberName,proto3" json:"member_name,omitempty"`
	MemberZoneId  uint32                 `protobuf:"varint,6,opt,name=member_zone_id,json=memberZoneId,proto3" json:"member_zone_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TeamAddPlayerNotice) Reset() {
	*x = TeamAddPlayerNotice{}
	mi := &file_chat_v1_chat_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TeamAddPlayerNotice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TeamAddPlayerNotice) ProtoMessage() {}

func (x *TeamAddPlayerNotice) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TeamAddPlayerNotice.ProtoReflect.Descriptor instead.
func (*TeamAddPlayerNotice) Descriptor() ([]byte, []int) {
	return file_chat_v1_chat_proto_rawDescGZIP(), []int{16}
}

func (x *TeamAddPlayerNotice) GetInvite() bool {
	if x != nil {
		return x.Invite
	}
	return false
}

func (x *TeamAddPlayerNotice) GetLocal() bool {
	if x != nil {
		return x.Local
	}
	return false
}

func (x *TeamAddPlayerNotice) GetZoneChange() bool {
	if x != nil {
		return x.ZoneChange
	}
	return false
}

func (x *TeamAddPlayerNotice) GetMemberId() uint64 {
	if x != nil {
		return x.MemberId
	}
	return 0
}

func (x *TeamAddPlayerNotice) GetMemberName() string {
	if x != nil {
		return x.MemberName
	}
	return ""
}

func (x *TeamAddPlayerNotice) GetMemberZoneId() uint32 {
	if x != nil {
		return x.MemberZoneId
	}
	return 0
}

type TeamRemovePlayerNotice struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Disband           bool                   `protobuf:"varint,1,opt,name=disband,proto3" json:"disband,omitempty"`
	Kicked            bool                   `protobuf:"varint,2,opt,name=kicked,proto3" json:"kicked,omitempty"`
	Leaving           bool                   `protobuf:"varint,3,opt,name=leaving,proto3" json:"leaving,omitempty"`
	Local             bool                   `protobuf:"varint,4,opt,name=local,proto3" json:"local,omitempty"`
	NewLeaderId       uint64                 `protobuf:"varint,5,opt,name=new_leader_id,json=newLeaderId,proto3" json:"new_leader_id,omitempty"`
	CausingPlayerId   uint64                 `protobuf:"varint,6,opt,name=causing_player_id,json=causingPlayerId,proto3" json:"causing_player_id,omitempty"`
	CausingPlayerName string                 `protobuf:"bytes,7,opt,name=causing_player_name,json=causingPlayerName,proto3" json:"causing_player_name,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *TeamRemovePlayerNotice) Reset() {
	*x = TeamRemovePlayerNotice{}
	mi := &file_chat_v1_chat_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TeamRemovePlayerNotice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TeamRemovePlayerNotice) ProtoMessage() {}

func (x *TeamRemovePlayerNotice) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TeamRemovePlayerNotice.ProtoReflect.Descriptor instead.
func (*TeamRemovePlayerNotice) Descriptor() ([]byte, []int) {
	return file_chat_v1_chat_proto_rawDescGZIP(), []int{17}
}

func (x *TeamRemovePlayerNotice) GetDisband() bool {
	if x != nil {
		return x.Disband
	}
	return false
}

func (x *TeamRemovePlayerNotice) GetKicked() bool {
	if x != nil {
		return x.Kicked
	}
	return false
}

func (x *TeamRemovePlayerNotice) GetLeaving() bool {
	if x != nil {
		return x.Leaving
	}
	return false
}

func (x *TeamRemovePlayerNotice) GetLocal() bool {
	if x != nil {
		return x.Local
	}
	return false
}

func (x *TeamRemovePlayerNotice) GetNewLeaderId() uint64 {
	if x != nil {
		return x.NewLeaderId
	}
	return 0
}

func (x *TeamRemovePlayerNotice) GetCausingPlayerId() uint64 {
	if x != nil {
		return x.CausingPlayerId
	}
	return 0
}

func (x *TeamRemovePlayerNotice) GetCausingPlayerName() string {
	if x != nil {
		return x.CausingPlayerName
	}
	return ""
}

type TeamRosterBroadcast struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	TeamId  uint32                 `protobuf:"varint,1,opt,name=team_id,json=teamId,proto3" json:"team_id,omitempty"`
	Deleted bool                   `protobuf:"varint,2,opt,name=deleted,proto3" json:"deleted,omitempty"`
	// loot_shared and member_ids are meaningless when deleted is set.
	LootShared    bool     `protobuf:"varint,3,opt,name=loot_shared,json=lootShared,proto3" json:"loot_shared,omitempty"`
	MemberIds     []uint64 `protobuf:"varint,4,rep,packed,name=member_ids,json=memberIds,proto3" json:"member_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TeamRosterBroadcast) Reset() {
	*x = TeamRosterBroadcast{}
	mi := &file_chat_v1_chat_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TeamRosterBroadcast) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TeamRosterBroadcast) ProtoMessage() {}

func (x *TeamRosterBroadcast) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TeamRosterBroadcast.ProtoReflect.Descriptor instead.
func (*TeamRosterBroadcast) Descriptor() ([]byte, []int) {
	return file_chat_v1_chat_proto_rawDescGZIP(), []int{18}
}

func (x *TeamRosterBroadcast) GetTeamId() uint32 {
	if x != nil {
		return x.TeamId
	}
	return 0
}

func (x *TeamRosterBroadcast) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

func (x *TeamRosterBroadcast) GetLootShared() bool {
	if x != nil {
		return x.LootShared
	}
	return false
}

func (x *TeamRosterBroadcast) GetMemberIds() []uint64 {
	if x != nil {
		return x.MemberIds
	}
	return nil
}

type SystemMessageNotice struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SystemMessageNotice) Reset() {
	*x = SystemMessageNotice{}
	mi := &file_chat_v1_chat_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SystemMessageNotice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SystemMessageNotice) ProtoMessage() {}

func (x *SystemMessageNotice) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SystemMessageNotice.ProtoReflect.Descriptor instead.
func (*SystemMessageNotice) Descriptor() ([]byte, []int) {
	return file_chat_v1_chat_proto_rawDescGZIP(), []int{19}
}

func (x *SystemMessageNotice) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type TeamStatusNotice struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LeaderId      uint64                 `protobuf:"varint,1,opt,name=leader_id,json=leaderId,proto3" json:"leader_id,omitempty"`
	LeaderZoneId  uint32                 `protobuf:"varint,2,opt,name=leader_zone_id,json=leaderZoneId,proto3" json:"leader_zone_id,omitempty"`
	LootShared    bool                   `protobuf:"varint,3,opt,name=loot_shared,json=lootShared,proto3" json:"loot_shared,omitempty"`
	LeaderName    string                 `protobuf:"bytes,4,opt,name=leader_name,json=leaderName,proto3" json:"leader_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TeamStatusNotice) Reset() {
	*x = TeamStatusNotice{}
	mi := &file_chat_v1_chat_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TeamStatusNotice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TeamStatusNotice) ProtoMessage() {}

func (x *TeamStatusNotice) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TeamStatusNotice.ProtoReflect.Descriptor instead.
func (*TeamStatusNotice) Descriptor() ([]byte, []int) {
	return file_chat_v1_chat_proto_rawDescGZIP(), []int{20}
}

func (x *TeamStatusNotice) GetLeaderId() uint64 {
	if x != nil {
		return x.LeaderId
	}
	return 0
}

func (x *TeamStatusNotice) GetLeaderZoneId() uint32 {
	if x != nil {
		return x.LeaderZoneId
	}
	return 0
}

func (x *TeamStatusNotice) GetLootShared() bool {
	if x != nil {
		return x.LootShared
	}
	return false
}

func (x *TeamStatusNotice) GetLeaderName() string {
	if x != nil {
		return x.LeaderName
	}
	return ""
}

var File_chat_v1_chat_proto protoreflect.FileDescriptor

const file_chat_v1_chat_proto_rawDesc = "" +
	"\n" +
	"\x12chat/v1/chat.proto\x12\achat.v1\"\xfc\x04\n" +
	"\fWorldMessage\x12C\n" +
	"\rinsert_player\x18\x01 \x01(\v2\x1c.chat.v1.InsertPlayerRequestH\x00R\finsertPlayer\x12\\\n" +
	"\x16schedule_remove_player\x18\x02 \x01(\v2$.chat.v1.ScheduleRemovePlayerRequestH\x00R\x14scheduleRemovePlayer\x12=\n" +
	"\vmute_update\x18\x03 \x01(\v2\x1a.chat.v1.MuteUpdateRequestH\x00R\n" +
	"muteUpdate\x12=\n" +
	"\vcreate_team\x18\x04 \x01(\v2\x1a.chat.v1.CreateTeamRequestH\x00R\n" +
	"createTeam\x12:\n" +
	"\n" +
	"team_leave\x18\x05 \x01(\v2\x19.chat.v1.TeamLeaveRequestH\x00R\tteamLeave\x127\n" +
	"\tteam_kick\x18\x06 \x01(\v2\x18.chat.v1.TeamKickRequestH\x00R\bteamKick\x12@\n" +
	"\fteam_promote\x18\a \x01(\v2\x1b.chat.v1.TeamPromoteRequestH\x00R\vteamPromote\x12J\n" +
	"\x10team_loot_toggle\x18\b \x01(\v2\x1e.chat.v1.TeamLootToggleRequestH\x00R\x0eteamLootToggle\x12=\n" +
	"\vteam_status\x18\t \x01(\v2\x1a.chat.v1.TeamStatusRequestH\x00R\n" +
	"teamStatusB\t\n" +
	"\apayload\"\xb2\x01\n" +
	"\x13InsertPlayerRequest\x12\x1b\n" +
	"\tplayer_id\x18\x01 \x01(\x04R\bplayerId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x17\n" +
	"\azone_id\x18\x03 \x01(\rR\x06zoneId\x12(\n" +
	"\x10mute_expiry_unix\x18\x04 \x01(\x03R\x0emuteExpiryUnix\x12'\n" +
	"\x0fprivilege_level\x18\x05 \x01(\x05R\x0eprivilegeLevel\":\n" +
	"\x1bScheduleRemovePlayerRequest\x12\x1b\n" +
	"\tplayer_id\x18\x01 \x01(\x04R\bplayerId\"Z\n" +
	"\x11MuteUpdateRequest\x12\x1b\n" +
	"\tplayer_id\x18\x01 \x01(\x04R\bplayerId\x12(\n" +
	"\x10mute_expiry_unix\x18\x02 \x01(\x03R\x0emuteExpiryUnix\"h\n" +
	"\x11CreateTeamRequest\x12\x1b\n" +
	"\tleader_id\x18\x01 \x01(\x04R\bleaderId\x12\x1d\n" +
	"\n" +
	"member_ids\x18\x02 \x03(\x04R\tmemberIds\x12\x17\n" +
	"\azone_id\x18\x03 \x01(\rR\x06zoneId\"/\n" +
	"\x10TeamLeaveRequest\x12\x1b\n" +
	"\tplayer_id\x18\x01 \x01(\x04R\bplayerId\"K\n" +
	"\x0fTeamKickRequest\x12\x1b\n" +
	"\tleader_id\x18\x01 \x01(\x04R\bleaderId\x12\x1b\n" +
	"\ttarget_id\x18\x02 \x01(\x04R\btargetId\"U\n" +
	"\x12TeamPromoteRequest\x12\x1b\n" +
	"\tleader_id\x18\x01 \x01(\x04R\bleaderId\x12\"\n" +
	"\rnew_leader_id\x18\x02 \x01(\x04R\vnewLeaderId\"U\n" +
	"\x15TeamLootToggleRequest\x12\x1b\n" +
	"\tleader_id\x18\x01 \x01(\x04R\bleaderId\x12\x1f\n" +
	"\vloot_shared\x18\x02 \x01(\bR\n" +
	"lootShared\"0\n" +
	"\x11TeamStatusRequest\x12\x1b\n" +
	"\tplayer_id\x18\x01 \x01(\x04R\bplayerId\"\x87\x06\n" +
	"\vChatMessage\x12(\n" +
	"\x10target_player_id\x18\x01 \x01(\x04R\x0etargetPlayerId\x12B\n" +
	"\rfriend_status\x18\x02 \x01(\v2\x1b.chat.v1.FriendStatusNoticeH\x00R\ffriendStatus\x12C\n" +
	"\x0eteam_off_world\x18\x03 \x01(\v2\x1b.chat.v1.TeamOffWorldNoticeH\x00R\fteamOffWorld\x12?\n" +
	"\x0emute_broadcast\x18\x04 \x01(\v2\x16.chat.v1.MuteBroadcastH\x00R\rmuteBroadcast\x12R\n" +
	"\x13team_invite_confirm\x18\x05 \x01(\v2 .chat.v1.TeamInviteConfirmNoticeH\x00R\x11teamInviteConfirm\x12F\n" +
	"\x0fteam_set_leader\x18\x06 \x01(\v2\x1c.chat.v1.TeamSetLeaderNoticeH\x00R\rteamSetLeader\x12F\n" +
	"\x0fteam_add_player\x18\a \x01(\v2\x1c.chat.v1.TeamAddPlayerNoticeH\x00R\rteamAddPlayer\x12O\n" +
	"\x12team_remove_player\x18\b \x01(\v2\x1f.chat.v1.TeamRemovePlayerNoticeH\x00R\x10teamRemovePlayer\x12?\n" +
	"\vteam_roster\x18\t \x01(\v2\x1c.chat.v1.TeamRosterBroadcastH\x00R\n" +
	"teamRoster\x12E\n" +
	"\x0esystem_message\x18\n" +
	" \x01(\v2\x1c.chat.v1.SystemMessageNoticeH\x00R\rsystemMessage\x12<\n" +
	"\vteam_status\x18\v \x01(\v2\x19.chat.v1.TeamStatusNoticeH\x00R\n" +
	"teamStatusB\t\n" +
	"\apayload\"\xa6\x01\n" +
	"\x12FriendStatusNotice\x12&\n" +
	"\x0fabout_player_id\x18\x01 \x01(\x04R\raboutPlayerId\x12*\n" +
	"\x11about_player_name\x18\x02 \x01(\tR\x0faboutPlayerName\x12\x16\n" +
	"\x06online\x18\x03 \x01(\bR\x06online\x12$\n" +
	"\x0eis_best_friend\x18\x04 \x01(\bR\fisBestFriend\"l\n" +
	"\x12TeamOffWorldNotice\x12,\n" +
	"\x12departed_player_id\x18\x01 \x01(\x04R\x10departedPlayerId\x12\f\n" +
	"\x01x\x18\x02 \x01(\x02R\x01x\x12\f\n" +
	"\x01y\x18\x03 \x01(\x02R\x01y\x12\f\n" +
	"\x01z\x18\x04 \x01(\x02R\x01z\"V\n" +
	"\rMuteBroadcast\x12\x1b\n" +
	"\tplayer_id\x18\x01 \x01(\x04R\bplayerId\x12(\n" +
	"\x10mute_expiry_unix\x18\x02 \x01(\x03R\x0emuteExpiryUnix\"\xb6\x01\n" +
	"\x17TeamInviteConfirmNotice\x12\x16\n" +
	"\x06invite\x18\x01 \x01(\bR\x06invite\x12\x1b\n" +
	"\tleader_id\x18\x02 \x01(\x04R\bleaderId\x12$\n" +
	"\x0eleader_zone_id\x18\x03 \x01(\rR\fleaderZoneId\x12\x1f\n" +
	"\vloot_shared\x18\x04 \x01(\bR\n" +
	"lootShared\x12\x1f\n" +
	"\vleader_name\x18\x05 \x01(\tR\n" +
	"leaderName\"2\n" +
	"\x13TeamSetLeaderNotice\x12\x1b\n" +
	"\tleader_id\x18\x01 \x01(\x04R\bleaderId\"\xc8\x01\n" +
	"\x13TeamAddPlayerNotice\x12\x16\n" +
	"\x06invite\x18\x01 \x01(\bR\x06invite\x12\x14\n" +
	"\x05local\x18\x02 \x01(\bR\x05local\x12\x1f\n" +
	"\vzone_change\x18\x03 \x01(\bR\n" +
	"zoneChange\x12\x1b\n" +
	"\tmember_id\x18\x04 \x01(\x04R\bmemberId\x12\x1f\n" +
	"\vmember_name\x18\x05 \x01(\tR\n" +
	"memberName\x12$\n" +
	"\x0emember_zone_id\x18\x06 \x01(\rR\fmemberZoneId\"\xfa\x01\n" +
	"\x16TeamRemovePlayerNotice\x12\x18\n" +
	"\adisband\x18\x01 \x01(\bR\adisband\x12\x16\n" +
	"\x06kicked\x18\x02 \x01(\bR\x06kicked\x12\x18\n" +
	"\aleaving\x18\x03 \x01(\bR\aleaving\x12\x14\n" +
	"\x05local\x18\x04 \x01(\bR\x05local\x12\"\n" +
	"\rnew_leader_id\x18\x05 \x01(\x04R\vnewLeaderId\x12*\n" +
	"\x11causing_player_id\x18\x06 \x01(\x04R\x0fcausingPlayerId\x12.\n" +
	"\x13causing_player_name\x18\a \x01(\tR\x11causingPlayerName\"\x88\x01\n" +
	"\x13TeamRosterBroadcast\x12\x17\n" +
	"\ateam_id\x18\x01 \x01(\rR\x06teamId\x12\x18\n" +
	"\adeleted\x18\x02 \x01(\bR\adeleted\x12\x1f\n" +
	"\vloot_shared\x18\x03 \x01(\bR\n" +
	"lootShared\x12\x1d\n" +
	"\n" +
	"member_ids\x18\x04 \x03(\x04R\tmemberIds\")\n" +
	"\x13SystemMessageNotice\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\"\x97\x01\n" +
	"\x10TeamStatusNotice\x12\x1b\n" +
	"\tleader_id\x18\x01 \x01(\x04R\bleaderId\x12$\n" +
	"\x0eleader_zone_id\x18\x02 \x01(\rR\fleaderZoneId\x12\x1f\n" +
	"\vloot_shared\x18\x03 \x01(\bR\n" +
	"lootShared\x12\x1f\n" +
	"\vleader_name\x18\x04 \x01(\tR\n" +
	"leaderName2J\n" +
	"\x0fChatLinkService\x127\n" +
	"\x04Link\x12\x15.chat.v1.WorldMessage\x1a\x14.chat.v1.ChatMessage(\x010\x01BCZAgithub.com/cory-johannsen/chatd/internal/chatserver/chatv1;chatv1b\x06proto3"

var (
	file_chat_v1_chat_proto_rawDescOnce sync.Once
	file_chat_v1_chat_proto_rawDescData []byte
)

func file_chat_v1_chat_proto_rawDescGZIP() []byte {
	file_chat_v1_chat_proto_rawDescOnce.Do(func() {
		file_chat_v1_chat_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_chat_v1_chat_proto_rawDesc), len(file_chat_v1_chat_proto_rawDesc)))
	})
	return file_chat_v1_chat_proto_rawDescData
}

var file_chat_v1_chat_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_chat_v1_chat_proto_goTypes = []any{
	(*WorldMessage)(nil),                // 0: chat.v1.WorldMessage
	(*InsertPlayerRequest)(nil),         // 1: chat.v1.InsertPlayerRequest
	(*ScheduleRemovePlayerRequest)(nil), // 2: chat.v1.ScheduleRemovePlayerRequest
	(*MuteUpdateRequest)(nil),           // 3: chat.v1.MuteUpdateRequest
	(*CreateTeamRequest)(nil),           // 4: chat.v1.CreateTeamRequest
	(*TeamLeaveRequest)(nil),            // 5: chat.v1.TeamLeaveRequest
	(*TeamKickRequest)(nil),             // 6: chat.v1.TeamKickRequest
	(*TeamPromoteRequest)(nil),          // 7: chat.v1.TeamPromoteRequest
	(*TeamLootToggleRequest)(nil),       // 8: chat.v1.TeamLootToggleRequest
	(*TeamStatusRequest)(nil),           // 9: chat.v1.TeamStatusRequest
	(*ChatMessage)(nil),                 // 10: chat.v1.ChatMessage
	(*FriendStatusNotice)(nil),          // 11: chat.v1.FriendStatusNotice
	(*TeamOffWorldNotice)(nil),          // 12: chat.v1.TeamOffWorldNotice
	(*MuteBroadcast)(nil),               // 13: chat.v1.MuteBroadcast
	(*TeamInviteConfirmNotice)(nil),     // 14: chat.v1.TeamInviteConfirmNotice
	(*TeamSetLeaderNotice)(nil),         // 15: chat.v1.TeamSetLeaderNotice
	(*TeamAddPlayerNotice)(nil),         // 16: chat.v1.TeamAddPlayerNotice
	(*TeamRemovePlayerNotice)(nil),      // 17: chat.v1.TeamRemovePlayerNotice
	(*TeamRosterBroadcast)(nil),         // 18: chat.v1.TeamRosterBroadcast
	(*SystemMessageNotice)(nil),         // 19: chat.v1.SystemMessageNotice
	(*TeamStatusNotice)(nil),            // 20: chat.v1.TeamStatusNotice
}
var file_chat_v1_chat_proto_depIdxs = []int32{
	1,  // 0: chat.v1.WorldMessage.insert_player:type_name -> chat.v1.InsertPlayerRequest
	2,  // 1: chat.v1.WorldMessage.schedule_remove_player:type_name -> chat.v1.ScheduleRemovePlayerRequest
	3,  // 2: chat.v1.WorldMessage.mute_update:type_name -> chat.v1.MuteUpdateRequest
	4,  // 3: chat.v1.WorldMessage.create_team:type_name -> chat.v1.CreateTeamRequest
	5,  // 4: chat.v1.WorldMessage.team_leave:type_name -> chat.v1.TeamLeaveRequest
	6,  // 5: chat.v1.WorldMessage.team_kick:type_name -> chat.v1.TeamKickRequest
	7,  // 6: chat.v1.WorldMessage.team_promote:type_name -> chat.v1.TeamPromoteRequest
	8,  // 7: chat.v1.WorldMessage.team_loot_toggle:type_name -> chat.v1.TeamLootToggleRequest
	9,  // 8: chat.v1.WorldMessage.team_status:type_name -> chat.v1.TeamStatusRequest
	11, // 9: chat.v1.ChatMessage.friend_status:type_name -> chat.v1.FriendStatusNotice
	12, // 10: chat.v1.ChatMessage.team_off_world:type_name -> chat.v1.TeamOffWorldNotice
	13, // 11: chat.v1.ChatMessage.mute_broadcast:type_name -> chat.v1.MuteBroadcast
	14, // 12: chat.v1.ChatMessage.team_invite_confirm:type_name -> chat.v1.TeamInviteConfirmNotice
	15, // 13: chat.v1.ChatMessage.team_set_leader:type_name -> chat.v1.TeamSetLeaderNotice
	16, // 14: chat.v1.ChatMessage.team_add_player:type_name -> chat.v1.TeamAddPlayerNotice
	17, // 15: chat.v1.ChatMessage.team_remove_player:type_name -> chat.v1.TeamRemovePlayerNotice
	18, // 16: chat.v1.ChatMessage.team_roster:type_name -> chat.v1.TeamRosterBroadcast
	19, // 17: chat.v1.ChatMessage.system_message:type_name -> chat.v1.SystemMessageNotice
	20, // 18: chat.v1.ChatMessage.team_status:type_name -> chat.v1.TeamStatusNotice
	0,  // 19: chat.v1.ChatLinkService.Link:input_type -> chat.v1.WorldMessage
	10, // 20: chat.v1.ChatLinkService.Link:output_type -> chat.v1.ChatMessage
	20, // [20:21] is the sub-list for method output_type
	19, // [19:20] is the sub-list for method input_type
	19, // [19:19] is the sub-list for extension type_name
	19, // [19:19] is the sub-list for extension extendee
	0,  // [0:19] is the sub-list for field type_name
}

func init() { file_chat_v1_chat_proto_init() }
func file_chat_v1_chat_proto_init() {
	if File_chat_v1_chat_proto != nil {
		return
	}
	file_chat_v1_chat_proto_msgTypes[0].OneofWrappers = []any{
		(*WorldMessage_InsertPlayer)(nil),
		(*WorldMessage_ScheduleRemovePlayer)(nil),
		(*WorldMessage_MuteUpdate)(nil),
		(*WorldMessage_CreateTeam)(nil),
		(*WorldMessage_TeamLeave)(nil),
		(*WorldMessage_TeamKick)(nil),
		(*WorldMessage_TeamPromote)(nil),
		(*WorldMessage_TeamLootToggle)(nil),
		(*WorldMessage_TeamStatus)(nil),
	}
	file_chat_v1_chat_proto_msgTypes[10].OneofWrappers = []any{
		(*ChatMessage_FriendStatus)(nil),
		(*ChatMessage_TeamOffWorld)(nil),
		(*ChatMessage_MuteBroadcast)(nil),
		(*ChatMessage_TeamInviteConfirm)(nil),
		(*ChatMessage_TeamSetLeader)(nil),
		(*ChatMessage_TeamAddPlayer)(nil),
		(*ChatMessage_TeamRemovePlayer)(nil),
		(*ChatMessage_TeamRoster)(nil),
		(*ChatMessage_SystemMessage)(nil),
		(*ChatMessage_TeamStatus)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_chat_v1_chat_proto_rawDesc), len(file_chat_v1_chat_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_chat_v1_chat_proto_goTypes,
		DependencyIndexes: file_chat_v1_chat_proto_depIdxs,
		MessageInfos:      file_chat_v1_chat_proto_msgTypes,
	}.Build()
	File_chat_v1_chat_proto = out.File
	file_chat_v1_chat_proto_goTypes = nil
	file_chat_v1_chat_proto_depIdxs = nil
}
