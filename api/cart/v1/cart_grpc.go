package cartv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dwikikusuma/storefront/pkg/grpcjson"
)

const (
	CartService_ServiceName             = "storefront.cart.v1.CartService"
	CartService_Dispatch_FullMethodName = "/storefront.cart.v1.CartService/Dispatch"
	CartService_GetCart_FullMethodName  = "/storefront.cart.v1.CartService/GetCart"
)

type CartServiceClient interface {
	Dispatch(ctx context.Context, in *DispatchRequest, opts ...grpc.CallOption) (*CartView, error)
	GetCart(ctx context.Context, in *GetCartRequest, opts ...grpc.CallOption) (*CartView, error)
}

type cartServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCartServiceClient(cc grpc.ClientConnInterface) CartServiceClient {
	return &cartServiceClient{cc: cc}
}

func (c *cartServiceClient) Dispatch(ctx context.Context, in *DispatchRequest, opts ...grpc.CallOption) (*CartView, error) {
	out := new(CartView)
	opts = append([]grpc.CallOption{grpcjson.CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, CartService_Dispatch_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cartServiceClient) GetCart(ctx context.Context, in *GetCartRequest, opts ...grpc.CallOption) (*CartView, error) {
	out := new(CartView)
	opts = append([]grpc.CallOption{grpcjson.CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, CartService_GetCart_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type CartServiceServer interface {
	Dispatch(context.Context, *DispatchRequest) (*CartView, error)
	GetCart(context.Context, *GetCartRequest) (*CartView, error)
}

// UnimplementedCartServiceServer can be embedded to keep servers compiling
// when methods are added.
type UnimplementedCartServiceServer struct{}

func (UnimplementedCartServiceServer) Dispatch(context.Context, *DispatchRequest) (*CartView, error) {
	return nil, status.Error(codes.Unimplemented, "method Dispatch not implemented")
}

func (UnimplementedCartServiceServer) GetCart(context.Context, *GetCartRequest) (*CartView, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCart not implemented")
}

func RegisterCartServiceServer(s grpc.ServiceRegistrar, srv CartServiceServer) {
	s.RegisterService(&CartService_ServiceDesc, srv)
}

func _CartService_Dispatch_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DispatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CartServiceServer).Dispatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CartService_Dispatch_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CartServiceServer).Dispatch(ctx, req.(*DispatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CartService_GetCart_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetCartRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CartServiceServer).GetCart(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CartService_GetCart_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CartServiceServer).GetCart(ctx, req.(*GetCartRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var CartService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CartService_ServiceName,
	HandlerType: (*CartServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Dispatch", Handler: _CartService_Dispatch_Handler},
		{MethodName: "GetCart", Handler: _CartService_GetCart_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/cart/v1/cart.go",
}
