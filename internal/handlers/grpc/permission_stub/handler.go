package permission_stub

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"orders/internal/gateway/grpc/permission"
	"orders/internal/pkg/config"
	"orders/pkg/logger"
)

// Handler отвечает на permission.v1.PermissionService/Check так же, как
// настоящий сервис прав: без токена - UNAUTHENTICATED, запрещённая операция -
// {allow: false}, остальное разрешено от имени настроенного пользователя.
type Handler struct {
	log    handlerLogger
	denied map[string]struct{}
	user   map[string]any
}

func New(log handlerLogger, cfg config.PermissionStub) *Handler {
	denied := make(map[string]struct{}, len(cfg.DeniedSlugs))
	for _, slug := range cfg.DeniedSlugs {
		denied[slug] = struct{}{}
	}

	return &Handler{
		log:    log,
		denied: denied,
		user: map[string]any{
			"id":    cfg.UserID,
			"name":  cfg.UserName,
			"email": cfg.UserEmail,
		},
	}
}

// Register подключает обработчик к gRPC-серверу без сгенерированного кода:
// сервис принимает и отдаёт google.protobuf.Struct.
func (h *Handler) Register(server *grpc.Server) {
	server.RegisterService(&serviceDesc, h)
}

func (h *Handler) Check(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()
	slug := fields["slug"].GetStringValue()
	token := fields["token"].GetStringValue()

	if token == "" {
		h.log.Info("permission stub: no token", logger.NewField("slug", slug))
		return nil, status.Error(codes.Unauthenticated, "token is required")
	}

	if _, ok := h.denied[slug]; ok {
		h.log.Info("permission stub: denied", logger.NewField("slug", slug))
		return structpb.NewStruct(map[string]any{
			"allow":   false,
			"message": "operation " + slug + " is forbidden",
		})
	}

	h.log.Info("permission stub: allowed", logger.NewField("slug", slug))
	return structpb.NewStruct(map[string]any{
		"allow": true,
		"user":  h.user,
	})
}

type checker interface {
	Check(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: "permission.v1.PermissionService",
	HandlerType: (*checker)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Check",
			Handler:    checkHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "permission/v1/permission.proto",
}

func checkHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(checker).Check(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: permission.CheckMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(checker).Check(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
