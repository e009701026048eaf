// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: chat/v1/chat.proto

package chatv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ChatLinkService_Link_FullMethodName = "/chat.v1.ChatLinkService/Link"
)

// ChatLinkServiceClient is the client API for ChatLinkService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ChatLinkService is the link every world server holds open against the chat
// server. World servers push presence and team mutations up the stream; the
// chat server pushes notices back down. A ChatMessage with target_player_id 0
// is addressed to the world server itself (a broadcast), otherwise the world
// server routes it to the named player's client.
type ChatLinkServiceClient interface {
	Link(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[WorldMessage, ChatMessage], error)
}

type chatLinkServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewChatLinkServiceClient(cc grpc.ClientConnInterface) ChatLinkServiceClient {
	return &chatLinkServiceClient{cc}
}

func (c *chatLinkServiceClient) Link(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[WorldMessage, ChatMessage], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &ChatLinkService_ServiceDesc.Streams[0], ChatLinkService_Link_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[WorldMessage, ChatMessage]{ClientStream: stream}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ChatLinkService_LinkClient = grpc.BidiStreamingClient[WorldMessage, ChatMessage]

// ChatLinkServiceServer is the server API for ChatLinkService service.
// All implementations must embed UnimplementedChatLinkServiceServer
// for forward compatibility.
//
// ChatLinkService is the link every world server holds open against the chat
// server. World servers push presence and team mutations up the stream; the
// chat server pushes notices back down. A ChatMessage with target_player_id 0
// is addressed to the world server itself (a broadcast), otherwise the world
// server routes it to the named player's client.
type ChatLinkServiceServer interface {
	Link(grpc.BidiStreamingServer[WorldMessage, ChatMessage]) error
	mustEmbedUnimplementedChatLinkServiceServer()
}

// UnimplementedChatLinkServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedChatLinkServiceServer struct{}

func (UnimplementedChatLinkServiceServer) Link(grpc.BidiStreamingServer[WorldMessage, ChatMessage]) error {
	return status.Error(codes.Unimplemented, "method Link not implemented")
}
func (UnimplementedChatLinkServiceServer) mustEmbedUnimplementedChatLinkServiceServer() {}
func (UnimplementedChatLinkServiceServer) testEmbeddedByValue()                         {}

// UnsafeChatLinkServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ChatLinkServiceServer will
// result in compilation errors.
type UnsafeChatLinkServiceServer interface {
	mustEmbedUnimplementedChatLinkServiceServer()
}

func RegisterChatLinkServiceServer(s grpc.ServiceRegistrar, srv ChatLinkServiceServer) {
	// If the following call panics, it indicates UnimplementedChatLinkServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ChatLinkService_ServiceDesc, srv)
}

func _ChatLinkService_Link_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(ChatLinkServiceServer).Link(&grpc.GenericServerStream[WorldMessage, ChatMessage]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ChatLinkService_LinkServer = grpc.BidiStreamingServer[WorldMessage, ChatMessage]

// ChatLinkService_ServiceDesc is the grpc.ServiceDesc for ChatLinkService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ChatLinkService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "chat.v1.ChatLinkService",
	HandlerType: (*ChatLinkServiceServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Link",
			Handler:       _ChatLinkService_Link_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "chat/v1/chat.proto",
}
