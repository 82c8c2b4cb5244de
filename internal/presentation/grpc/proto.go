package grpc

// proto.go defines the gRPC server interface derived from
// crestbank/underwriting/v1/underwriting.proto. This file serves as a
// stand-in for buf-generated code; messages travel over the JSON codec
// registered in json_codec.go. Once `buf generate` is run, replace this file
// with the import from the generated package.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/crestbank/underwriting-service/internal/application/dto"
)

// Message aliases: the wire messages are the application DTOs, serialized by
// the JSON codec.
type (
	ComputePaymentRequest         = dto.QuoteLoanRequest
	ComputePaymentResponse        = dto.PaymentResponse
	ComputeTotalCostRequest       = dto.QuoteLoanRequest
	ComputeTotalCostResponse      = dto.LoanQuoteResponse
	GenerateScheduleRequest       = dto.GenerateScheduleRequest
	GenerateScheduleResponse      = dto.ScheduleResponse
	ComputePenaltyRequest         = dto.ComputePenaltyRequest
	ComputePenaltyResponse        = dto.PenaltyResponse
	AssessRiskRequest             = dto.AssessRiskRequest
	AssessRiskResponse            = dto.RiskAssessmentResponse
	EvaluateAffordabilityRequest  = dto.EvaluateAffordabilityRequest
	EvaluateAffordabilityResponse = dto.AffordabilityResponse
)

// UnderwritingServiceServer is the server API for UnderwritingService.
// It mirrors the proto interface from crestbank.underwriting.v1.
type UnderwritingServiceServer interface {
	ComputePayment(context.Context, *ComputePaymentRequest) (*ComputePaymentResponse, error)
	ComputeTotalCost(context.Context, *ComputeTotalCostRequest) (*ComputeTotalCostResponse, error)
	GenerateSchedule(context.Context, *GenerateScheduleRequest) (*GenerateScheduleResponse, error)
	ComputePenalty(context.Context, *ComputePenaltyRequest) (*ComputePenaltyResponse, error)
	AssessRisk(context.Context, *AssessRiskRequest) (*AssessRiskResponse, error)
	EvaluateAffordability(context.Context, *EvaluateAffordabilityRequest) (*EvaluateAffordabilityResponse, error)
	mustEmbedUnimplementedUnderwritingServiceServer()
}

// UnimplementedUnderwritingServiceServer provides forward-compatible default
// implementations.
type UnimplementedUnderwritingServiceServer struct{}

func (UnimplementedUnderwritingServiceServer) ComputePayment(context.Context, *ComputePaymentRequest) (*ComputePaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ComputePayment not implemented")
}
func (UnimplementedUnderwritingServiceServer) ComputeTotalCost(context.Context, *ComputeTotalCostRequest) (*ComputeTotalCostResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ComputeTotalCost not implemented")
}
func (UnimplementedUnderwritingServiceServer) GenerateSchedule(context.Context, *GenerateScheduleRequest) (*GenerateScheduleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateSchedule not implemented")
}
func (UnimplementedUnderwritingServiceServer) ComputePenalty(context.Context, *ComputePenaltyRequest) (*ComputePenaltyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ComputePenalty not implemented")
}
func (UnimplementedUnderwritingServiceServer) AssessRisk(context.Context, *AssessRiskRequest) (*AssessRiskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AssessRisk not implemented")
}
func (UnimplementedUnderwritingServiceServer) EvaluateAffordability(context.Context, *EvaluateAffordabilityRequest) (*EvaluateAffordabilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EvaluateAffordability not implemented")
}
func (UnimplementedUnderwritingServiceServer) mustEmbedUnimplementedUnderwritingServiceServer() {}

// RegisterUnderwritingServiceServer registers the server implementation.
func RegisterUnderwritingServiceServer(s *grpclib.Server, srv UnderwritingServiceServer) {
	s.RegisterService(&_UnderwritingService_serviceDesc, srv)
}

var _UnderwritingService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "crestbank.underwriting.v1.UnderwritingService",
	HandlerType: (*UnderwritingServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ComputePayment", Handler: _UnderwritingService_ComputePayment_Handler},
		{MethodName: "ComputeTotalCost", Handler: _UnderwritingService_ComputeTotalCost_Handler},
		{MethodName: "GenerateSchedule", Handler: _UnderwritingService_GenerateSchedule_Handler},
		{MethodName: "ComputePenalty", Handler: _UnderwritingService_ComputePenalty_Handler},
		{MethodName: "AssessRisk", Handler: _UnderwritingService_AssessRisk_Handler},
		{MethodName: "EvaluateAffordability", Handler: _UnderwritingService_EvaluateAffordability_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _UnderwritingService_ComputePayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ComputePaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnderwritingServiceServer).ComputePayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/crestbank.underwriting.v1.UnderwritingService/ComputePayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnderwritingServiceServer).ComputePayment(ctx, req.(*ComputePaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UnderwritingService_ComputeTotalCost_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ComputeTotalCostRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnderwritingServiceServer).ComputeTotalCost(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/crestbank.underwriting.v1.UnderwritingService/ComputeTotalCost",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnderwritingServiceServer).ComputeTotalCost(ctx, req.(*ComputeTotalCostRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UnderwritingService_GenerateSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnderwritingServiceServer).GenerateSchedule(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/crestbank.underwriting.v1.UnderwritingService/GenerateSchedule",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnderwritingServiceServer).GenerateSchedule(ctx, req.(*GenerateScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UnderwritingService_ComputePenalty_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ComputePenaltyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnderwritingServiceServer).ComputePenalty(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/crestbank.underwriting.v1.UnderwritingService/ComputePenalty",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnderwritingServiceServer).ComputePenalty(ctx, req.(*ComputePenaltyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UnderwritingService_AssessRisk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AssessRiskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnderwritingServiceServer).AssessRisk(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/crestbank.underwriting.v1.UnderwritingService/AssessRisk",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnderwritingServiceServer).AssessRisk(ctx, req.(*AssessRiskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UnderwritingService_EvaluateAffordability_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateAffordabilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnderwritingServiceServer).EvaluateAffordability(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/crestbank.underwriting.v1.UnderwritingService/EvaluateAffordability",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnderwritingServiceServer).EvaluateAffordability(ctx, req.(*EvaluateAffordabilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}
