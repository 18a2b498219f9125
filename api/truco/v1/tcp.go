package v1

import (
	"context"
	"encoding/json"

	"github.com/yola1107/kratos/v2/transport/tcp"
)

// TrucoTCPServer is the server API for Truco service.
type TrucoTCPServer interface {
	Connect(context.Context, *ConnectReq) (*ConnectRsp, error)
	CreateRoom(context.Context, *CreateRoomReq) (*CreateRoomRsp, error)
	JoinRoom(context.Context, *JoinRoomReq) (*JoinRoomRsp, error)
	LeaveRoom(context.Context, *LeaveRoomReq) (*LeaveRoomRsp, error)
	RoomList(context.Context, *RoomListReq) (*RoomListRsp, error)
	StartMatch(context.Context, *StartMatchReq) (*StartMatchRsp, error)
	Scene(context.Context, *SceneReq) (*SceneRsp, error)
	PlayCard(context.Context, *PlayCardReq) (*PlayCardRsp, error)
	Truco(context.Context, *BetReq) (*BetRsp, error)
	RespondTruco(context.Context, *RespondBetReq) (*BetRsp, error)
	Envido(context.Context, *BetReq) (*BetRsp, error)
	RespondEnvido(context.Context, *RespondBetReq) (*BetRsp, error)
	Flor(context.Context, *BetReq) (*BetRsp, error)
	RespondFlor(context.Context, *RespondBetReq) (*BetRsp, error)
	Forfeit(context.Context, *ForfeitReq) (*ForfeitRsp, error)

	SetCometChan(cl *tcp.ChanList, cs *tcp.Server)
}

func RegisterTrucoTCPServer(s *tcp.Server, srv TrucoTCPServer) {
	cl := s.RegisterService(&Truco_TCPServiceDesc, srv)
	srv.SetCometChan(cl, s)
}

func _Truco_Connect_TCPHandler(srv interface{}, ctx context.Context, data []byte, interceptor tcp.UnaryServerInterceptor) ([]byte, error) {
	in := new(ConnectReq)
	if err := json.Unmarshal(data, in); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req interface{}) ([]byte, error) {
		rsp, err := srv.(TrucoTCPServer).Connect(ctx, req.(*ConnectReq))
		if err != nil {
			return nil, err
		}
		return json.Marshal(rsp)
	}
	if interceptor == nil {
		return handler(ctx, in)
	}
	info := &tcp.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/truco.v1.Truco/Connect",
	}
	return interceptor(ctx, in, info, handler)
}

func _Truco_CreateRoom_TCPHandler(srv interface{}, ctx context.Context, data []byte, interceptor tcp.UnaryServerInterceptor) ([]byte, error) {
	in := new(CreateRoomReq)
	if err := json.Unmarshal(data, in); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req interface{}) ([]byte, error) {
		rsp, err := srv.(TrucoTCPServer).CreateRoom(ctx, req.(*CreateRoomReq))
		if err != nil {
			return nil, err
		}
		return json.Marshal(rsp)
	}
	if interceptor == nil {
		return handler(ctx, in)
	}
	info := &tcp.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/truco.v1.Truco/CreateRoom",
	}
	return interceptor(ctx, in, info, handler)
}

func _Truco_JoinRoom_TCPHandler(srv interface{}, ctx context.Context, data []byte, interceptor tcp.UnaryServerInterceptor) ([]byte, error) {
	in := new(JoinRoomReq)
	if err := json.Unmarshal(data, in); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req interface{}) ([]byte, error) {
		rsp, err := srv.(TrucoTCPServer).JoinRoom(ctx, req.(*JoinRoomReq))
		if err != nil {
			return nil, err
		}
		return json.Marshal(rsp)
	}
	if interceptor == nil {
		return handler(ctx, in)
	}
	info := &tcp.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/truco.v1.Truco/JoinRoom",
	}
	return interceptor(ctx, in, info, handler)
}

func _Truco_LeaveRoom_TCPHandler(srv interface{}, ctx context.Context, data []byte, interceptor tcp.UnaryServerInterceptor) ([]byte, error) {
	in := new(LeaveRoomReq)
	if err := json.Unmarshal(data, in); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req interface{}) ([]byte, error) {
		rsp, err := srv.(TrucoTCPServer).LeaveRoom(ctx, req.(*LeaveRoomReq))
		if err != nil {
			return nil, err
		}
		return json.Marshal(rsp)
	}
	if interceptor == nil {
		return handler(ctx, in)
	}
	info := &tcp.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/truco.v1.Truco/LeaveRoom",
	}
	return interceptor(ctx, in, info, handler)
}

func _Truco_RoomList_TCPHandler(srv interface{}, ctx context.Context, data []byte, interceptor tcp.UnaryServerInterceptor) ([]byte, error) {
	in := new(RoomListReq)
	if err := json.Unmarshal(data, in); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req interface{}) ([]byte, error) {
		rsp, err := srv.(TrucoTCPServer).RoomList(ctx, req.(*RoomListReq))
		if err != nil {
			return nil, err
		}
		return json.Marshal(rsp)
	}
	if interceptor == nil {
		return handler(ctx, in)
	}
	info := &tcp.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/truco.v1.Truco/RoomList",
	}
	return interceptor(ctx, in, info, handler)
}

func _Truco_StartMatch_TCPHandler(srv interface{}, ctx context.Context, data []byte, interceptor tcp.UnaryServerInterceptor) ([]byte, error) {
	in := new(StartMatchReq)
	if err := json.Unmarshal(data, in); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req interface{}) ([]byte, error) {
		rsp, err := srv.(TrucoTCPServer).StartMatch(ctx, req.(*StartMatchReq))
		if err != nil {
			return nil, err
		}
		return json.Marshal(rsp)
	}
	if interceptor == nil {
		return handler(ctx, in)
	}
	info := &tcp.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/truco.v1.Truco/StartMatch",
	}
	return interceptor(ctx, in, info, handler)
}

func _Truco_Scene_TCPHandler(srv interface{}, ctx context.Context, data []byte, interceptor tcp.UnaryServerInterceptor) ([]byte, error) {
	in := new(SceneReq)
	if err := json.Unmarshal(data, in); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req interface{}) ([]byte, error) {
		rsp, err := srv.(TrucoTCPServer).Scene(ctx, req.(*SceneReq))
		if err != nil {
			return nil, err
		}
		return json.Marshal(rsp)
	}
	if interceptor == nil {
		return handler(ctx, in)
	}
	info := &tcp.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/truco.v1.Truco/Scene",
	}
	return interceptor(ctx, in, info, handler)
}

func _Truco_PlayCard_TCPHandler(srv interface{}, ctx context.Context, data []byte, interceptor tcp.UnaryServerInterceptor) ([]byte, error) {
	in := new(PlayCardReq)
	if err := json.Unmarshal(data, in); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req interface{}) ([]byte, error) {
		rsp, err := srv.(TrucoTCPServer).PlayCard(ctx, req.(*PlayCardReq))
		if err != nil {
			return nil, err
		}
		return json.Marshal(rsp)
	}
	if interceptor == nil {
		return handler(ctx, in)
	}
	info := &tcp.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/truco.v1.Truco/PlayCard",
	}
	return interceptor(ctx, in, info, handler)
}

func _Truco_Truco_TCPHandler(srv interface{}, ctx context.Context, data []byte, interceptor tcp.UnaryServerInterceptor) ([]byte, error) {
	in := new(BetReq)
	if err := json.Unmarshal(data, in); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req interface{}) ([]byte, error) {
		rsp, err := srv.(TrucoTCPServer).Truco(ctx, req.(*BetReq))
		if err != nil {
			return nil, err
		}
		return json.Marshal(rsp)
	}
	if interceptor == nil {
		return handler(ctx, in)
	}
	info := &tcp.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/truco.v1.Truco/Truco",
	}
	return interceptor(ctx, in, info, handler)
}

func _Truco_RespondTruco_TCPHandler(srv interface{}, ctx context.Context, data []byte, interceptor tcp.UnaryServerInterceptor) ([]byte, error) {
	in := new(RespondBetReq)
	if err := json.Unmarshal(data, in); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req interface{}) ([]byte, error) {
		rsp, err := srv.(TrucoTCPServer).RespondTruco(ctx, req.(*RespondBetReq))
		if err != nil {
			return nil, err
		}
		return json.Marshal(rsp)
	}
	if interceptor == nil {
		return handler(ctx, in)
	}
	info := &tcp.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/truco.v1.Truco/RespondTruco",
	}
	return interceptor(ctx, in, info, handler)
}

func _Truco_Envido_TCPHandler(srv interface{}, ctx context.Context, data []byte, interceptor tcp.UnaryServerInterceptor) ([]byte, error) {
	in := new(BetReq)
	if err := json.Unmarshal(data, in); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req interface{}) ([]byte, error) {
		rsp, err := srv.(TrucoTCPServer).Envido(ctx, req.(*BetReq))
		if err != nil {
			return nil, err
		}
		return json.Marshal(rsp)
	}
	if interceptor == nil {
		return handler(ctx, in)
	}
	info := &tcp.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/truco.v1.Truco/Envido",
	}
	return interceptor(ctx, in, info, handler)
}

func _Truco_RespondEnvido_TCPHandler(srv interface{}, ctx context.Context, data []byte, interceptor tcp.UnaryServerInterceptor) ([]byte, error) {
	in := new(RespondBetReq)
	if err := json.Unmarshal(data, in); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req interface{}) ([]byte, error) {
		rsp, err := srv.(TrucoTCPServer).RespondEnvido(ctx, req.(*RespondBetReq))
		if err != nil {
			return nil, err
		}
		return json.Marshal(rsp)
	}
	if interceptor == nil {
		return handler(ctx, in)
	}
	info := &tcp.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/truco.v1.Truco/RespondEnvido",
	}
	return interceptor(ctx, in, info, handler)
}

func _Truco_Flor_TCPHandler(srv interface{}, ctx context.Context, data []byte, interceptor tcp.UnaryServerInterceptor) ([]byte, error) {
	in := new(BetReq)
	if err := json.Unmarshal(data, in); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req interface{}) ([]byte, error) {
		rsp, err := srv.(TrucoTCPServer).Flor(ctx, req.(*BetReq))
		if err != nil {
			return nil, err
		}
		return json.Marshal(rsp)
	}
	if interceptor == nil {
		return handler(ctx, in)
	}
	info := &tcp.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/truco.v1.Truco/Flor",
	}
	return interceptor(ctx, in, info, handler)
}

func _Truco_RespondFlor_TCPHandler(srv interface{}, ctx context.Context, data []byte, interceptor tcp.UnaryServerInterceptor) ([]byte, error) {
	in := new(RespondBetReq)
	if err := json.Unmarshal(data, in); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req interface{}) ([]byte, error) {
		rsp, err := srv.(TrucoTCPServer).RespondFlor(ctx, req.(*RespondBetReq))
		if err != nil {
			return nil, err
		}
		return json.Marshal(rsp)
	}
	if interceptor == nil {
		return handler(ctx, in)
	}
	info := &tcp.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/truco.v1.Truco/RespondFlor",
	}
	return interceptor(ctx, in, info, handler)
}

func _Truco_Forfeit_TCPHandler(srv interface{}, ctx context.Context, data []byte, interceptor tcp.UnaryServerInterceptor) ([]byte, error) {
	in := new(ForfeitReq)
	if err := json.Unmarshal(data, in); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req interface{}) ([]byte, error) {
		rsp, err := srv.(TrucoTCPServer).Forfeit(ctx, req.(*ForfeitReq))
		if err != nil {
			return nil, err
		}
		return json.Marshal(rsp)
	}
	if interceptor == nil {
		return handler(ctx, in)
	}
	info := &tcp.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/truco.v1.Truco/Forfeit",
	}
	return interceptor(ctx, in, info, handler)
}

// Truco_TCPServiceDesc is the tcp.ServiceDesc for Truco service.
var Truco_TCPServiceDesc = tcp.ServiceDesc{
	ServiceName: "truco.v1.Truco",
	HandlerType: (*TrucoTCPServer)(nil),
	Methods: []tcp.MethodDesc{
		{Ops: CmdConnect, MethodName: "Connect", Handler: _Truco_Connect_TCPHandler},
		{Ops: CmdCreateRoom, MethodName: "CreateRoom", Handler: _Truco_CreateRoom_TCPHandler},
		{Ops: CmdJoinRoom, MethodName: "JoinRoom", Handler: _Truco_JoinRoom_TCPHandler},
		{Ops: CmdLeaveRoom, MethodName: "LeaveRoom", Handler: _Truco_LeaveRoom_TCPHandler},
		{Ops: CmdRoomList, MethodName: "RoomList", Handler: _Truco_RoomList_TCPHandler},
		{Ops: CmdStartMatch, MethodName: "StartMatch", Handler: _Truco_StartMatch_TCPHandler},
		{Ops: CmdScene, MethodName: "Scene", Handler: _Truco_Scene_TCPHandler},
		{Ops: CmdPlayCard, MethodName: "PlayCard", Handler: _Truco_PlayCard_TCPHandler},
		{Ops: CmdTruco, MethodName: "Truco", Handler: _Truco_Truco_TCPHandler},
		{Ops: CmdRespondTruco, MethodName: "RespondTruco", Handler: _Truco_RespondTruco_TCPHandler},
		{Ops: CmdEnvido, MethodName: "Envido", Handler: _Truco_Envido_TCPHandler},
		{Ops: CmdRespondEnvido, MethodName: "RespondEnvido", Handler: _Truco_RespondEnvido_TCPHandler},
		{Ops: CmdFlor, MethodName: "Flor", Handler: _Truco_Flor_TCPHandler},
		{Ops: CmdRespondFlor, MethodName: "RespondFlor", Handler: _Truco_RespondFlor_TCPHandler},
		{Ops: CmdForfeit, MethodName: "Forfeit", Handler: _Truco_Forfeit_TCPHandler},
	},
}
