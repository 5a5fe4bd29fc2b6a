// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: docpipe/v1/pipeline.proto

package docpipev1

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
	PipelineService_EnqueueForOCR_FullMethodName      = "/docpipe.v1.PipelineService/EnqueueForOCR"
	PipelineService_RunWorkerSweep_FullMethodName     = "/docpipe.v1.PipelineService/RunWorkerSweep"
	PipelineService_ReapStuck_FullMethodName          = "/docpipe.v1.PipelineService/ReapStuck"
	PipelineService_ScheduleRetry_FullMethodName      = "/docpipe.v1.PipelineService/ScheduleRetry"
	PipelineService_ApplyExtractedData_FullMethodName = "/docpipe.v1.PipelineService/ApplyExtractedData"
	PipelineService_BatchApply_FullMethodName         = "/docpipe.v1.PipelineService/BatchApply"
	PipelineService_GetDiagnostics_FullMethodName     = "/docpipe.v1.PipelineService/GetDiagnostics"
	PipelineService_AdminRequeue_FullMethodName       = "/docpipe.v1.PipelineService/AdminRequeue"
	PipelineService_GetDocument_FullMethodName        = "/docpipe.v1.PipelineService/GetDocument"
	PipelineService_ExportCaseReport_FullMethodName   = "/docpipe.v1.PipelineService/ExportCaseReport"
	PipelineService_DeleteCase_FullMethodName         = "/docpipe.v1.PipelineService/DeleteCase"
)

// PipelineServiceClient is the client API for PipelineService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// PipelineService exposes the document processing pipeline: enqueueing,
// sweeps, stuck-job recovery, applying extracted data and diagnostics.
type PipelineServiceClient interface {
	// EnqueueForOCR moves pending documents of a case into the queue.
	EnqueueForOCR(ctx context.Context, in *EnqueueForOCRRequest, opts ...grpc.CallOption) (*EnqueueForOCRResponse, error)
	// RunWorkerSweep claims and processes queued documents now, instead of
	// waiting for the next scheduled sweep.
	RunWorkerSweep(ctx context.Context, in *RunWorkerSweepRequest, opts ...grpc.CallOption) (*RunWorkerSweepResponse, error)
	// ReapStuck resets documents stuck in processing.
	ReapStuck(ctx context.Context, in *ReapStuckRequest, opts ...grpc.CallOption) (*ReapStuckResponse, error)
	// ScheduleRetry records a failure for a document and requeues or parks it.
	ScheduleRetry(ctx context.Context, in *ScheduleRetryRequest, opts ...grpc.CallOption) (*ScheduleRetryResponse, error)
	// ApplyExtractedData merges one document's extracted fields into its
	// case form.
	ApplyExtractedData(ctx context.Context, in *ApplyExtractedDataRequest, opts ...grpc.CallOption) (*ApplyExtractedDataResponse, error)
	// BatchApply applies every eligible document of a case.
	BatchApply(ctx context.Context, in *BatchApplyRequest, opts ...grpc.CallOption) (*BatchApplyResponse, error)
	// GetDiagnostics returns the pipeline health snapshot.
	GetDiagnostics(ctx context.Context, in *GetDiagnosticsRequest, opts ...grpc.CallOption) (*GetDiagnosticsResponse, error)
	// AdminRequeue moves a terminal document back into the queue with a
	// reset retry budget. Operator escape hatch; never automatic.
	AdminRequeue(ctx context.Context, in *AdminRequeueRequest, opts ...grpc.CallOption) (*AdminRequeueResponse, error)
	// GetDocument returns one document's pipeline state.
	GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error)
	// ExportCaseReport returns an XLSX report over a case's documents.
	ExportCaseReport(ctx context.Context, in *ExportCaseReportRequest, opts ...grpc.CallOption) (*ExportCaseReportResponse, error)
	// DeleteCase tombstones every document of a case. The rows survive for
	// the audit trail but leave all pipeline scans.
	DeleteCase(ctx context.Context, in *DeleteCaseRequest, opts ...grpc.CallOption) (*DeleteCaseResponse, error)
}

type pipelineServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPipelineServiceClient(cc grpc.ClientConnInterface) PipelineServiceClient {
	return &pipelineServiceClient{cc}
}

func (c *pipelineServiceClient) EnqueueForOCR(ctx context.Context, in *EnqueueForOCRRequest, opts ...grpc.CallOption) (*EnqueueForOCRResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EnqueueForOCRResponse)
	err := c.cc.Invoke(ctx, PipelineService_EnqueueForOCR_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) RunWorkerSweep(ctx context.Context, in *RunWorkerSweepRequest, opts ...grpc.CallOption) (*RunWorkerSweepResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RunWorkerSweepResponse)
	err := c.cc.Invoke(ctx, PipelineService_RunWorkerSweep_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) ReapStuck(ctx context.Context, in *ReapStuckRequest, opts ...grpc.CallOption) (*ReapStuckResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReapStuckResponse)
	err := c.cc.Invoke(ctx, PipelineService_ReapStuck_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) ScheduleRetry(ctx context.Context, in *ScheduleRetryRequest, opts ...grpc.CallOption) (*ScheduleRetryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ScheduleRetryResponse)
	err := c.cc.Invoke(ctx, PipelineService_ScheduleRetry_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) ApplyExtractedData(ctx context.Context, in *ApplyExtractedDataRequest, opts ...grpc.CallOption) (*ApplyExtractedDataResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ApplyExtractedDataResponse)
	err := c.cc.Invoke(ctx, PipelineService_ApplyExtractedData_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) BatchApply(ctx context.Context, in *BatchApplyRequest, opts ...grpc.CallOption) (*BatchApplyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BatchApplyResponse)
	err := c.cc.Invoke(ctx, PipelineService_BatchApply_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) GetDiagnostics(ctx context.Context, in *GetDiagnosticsRequest, opts ...grpc.CallOption) (*GetDiagnosticsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDiagnosticsResponse)
	err := c.cc.Invoke(ctx, PipelineService_GetDiagnostics_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) AdminRequeue(ctx context.Context, in *AdminRequeueRequest, opts ...grpc.CallOption) (*AdminRequeueResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AdminRequeueResponse)
	err := c.cc.Invoke(ctx, PipelineService_AdminRequeue_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentResponse)
	err := c.cc.Invoke(ctx, PipelineService_GetDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) ExportCaseReport(ctx context.Context, in *ExportCaseReportRequest, opts ...grpc.CallOption) (*ExportCaseReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportCaseReportResponse)
	err := c.cc.Invoke(ctx, PipelineService_ExportCaseReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) DeleteCase(ctx context.Context, in *DeleteCaseRequest, opts ...grpc.CallOption) (*DeleteCaseResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteCaseResponse)
	err := c.cc.Invoke(ctx, PipelineService_DeleteCase_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PipelineServiceServer is the server API for PipelineService service.
// All implementations must embed UnimplementedPipelineServiceServer
// for forward compatibility.
//
// PipelineService exposes the document processing pipeline: enqueueing,
// sweeps, stuck-job recovery, applying extracted data and diagnostics.
type PipelineServiceServer interface {
	// EnqueueForOCR moves pending documents of a case into the queue.
	EnqueueForOCR(context.Context, *EnqueueForOCRRequest) (*EnqueueForOCRResponse, error)
	// RunWorkerSweep claims and processes queued documents now, instead of
	// waiting for the next scheduled sweep.
	RunWorkerSweep(context.Context, *RunWorkerSweepRequest) (*RunWorkerSweepResponse, error)
	// ReapStuck resets documents stuck in processing.
	ReapStuck(context.Context, *ReapStuckRequest) (*ReapStuckResponse, error)
	// ScheduleRetry records a failure for a document and requeues or parks it.
	ScheduleRetry(context.Context, *ScheduleRetryRequest) (*ScheduleRetryResponse, error)
	// ApplyExtractedData merges one document's extracted fields into its
	// case form.
	ApplyExtractedData(context.Context, *ApplyExtractedDataRequest) (*ApplyExtractedDataResponse, error)
	// BatchApply applies every eligible document of a case.
	BatchApply(context.Context, *BatchApplyRequest) (*BatchApplyResponse, error)
	// GetDiagnostics returns the pipeline health snapshot.
	GetDiagnostics(context.Context, *GetDiagnosticsRequest) (*GetDiagnosticsResponse, error)
	// AdminRequeue moves a terminal document back into the queue with a
	// reset retry budget. Operator escape hatch; never automatic.
	AdminRequeue(context.Context, *AdminRequeueRequest) (*AdminRequeueResponse, error)
	// GetDocument returns one document's pipeline state.
	GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error)
	// ExportCaseReport returns an XLSX report over a case's documents.
	ExportCaseReport(context.Context, *ExportCaseReportRequest) (*ExportCaseReportResponse, error)
	// DeleteCase tombstones every document of a case. The rows survive for
	// the audit trail but leave all pipeline scans.
	DeleteCase(context.Context, *DeleteCaseRequest) (*DeleteCaseResponse, error)
	mustEmbedUnimplementedPipelineServiceServer()
}

// UnimplementedPipelineServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPipelineServiceServer struct{}

func (UnimplementedPipelineServiceServer) EnqueueForOCR(context.Context, *EnqueueForOCRRequest) (*EnqueueForOCRResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EnqueueForOCR not implemented")
}
func (UnimplementedPipelineServiceServer) RunWorkerSweep(context.Context, *RunWorkerSweepRequest) (*RunWorkerSweepResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RunWorkerSweep not implemented")
}
func (UnimplementedPipelineServiceServer) ReapStuck(context.Context, *ReapStuckRequest) (*ReapStuckResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReapStuck not implemented")
}
func (UnimplementedPipelineServiceServer) ScheduleRetry(context.Context, *ScheduleRetryRequest) (*ScheduleRetryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScheduleRetry not implemented")
}
func (UnimplementedPipelineServiceServer) ApplyExtractedData(context.Context, *ApplyExtractedDataRequest) (*ApplyExtractedDataResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApplyExtractedData not implemented")
}
func (UnimplementedPipelineServiceServer) BatchApply(context.Context, *BatchApplyRequest) (*BatchApplyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BatchApply not implemented")
}
func (UnimplementedPipelineServiceServer) GetDiagnostics(context.Context, *GetDiagnosticsRequest) (*GetDiagnosticsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDiagnostics not implemented")
}
func (UnimplementedPipelineServiceServer) AdminRequeue(context.Context, *AdminRequeueRequest) (*AdminRequeueResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AdminRequeue not implemented")
}
func (UnimplementedPipelineServiceServer) GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDocument not implemented")
}
func (UnimplementedPipelineServiceServer) ExportCaseReport(context.Context, *ExportCaseReportRequest) (*ExportCaseReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportCaseReport not implemented")
}
func (UnimplementedPipelineServiceServer) DeleteCase(context.Context, *DeleteCaseRequest) (*DeleteCaseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteCase not implemented")
}
func (UnimplementedPipelineServiceServer) mustEmbedUnimplementedPipelineServiceServer() {}
func (UnimplementedPipelineServiceServer) testEmbeddedByValue()                         {}

// UnsafePipelineServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PipelineServiceServer will
// result in compilation errors.
type UnsafePipelineServiceServer interface {
	mustEmbedUnimplementedPipelineServiceServer()
}

func RegisterPipelineServiceServer(s grpc.ServiceRegistrar, srv PipelineServiceServer) {
	// If the following call pancis, it indicates UnimplementedPipelineServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PipelineService_ServiceDesc, srv)
}

func _PipelineService_EnqueueForOCR_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EnqueueForOCRRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).EnqueueForOCR(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_EnqueueForOCR_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).EnqueueForOCR(ctx, req.(*EnqueueForOCRRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_RunWorkerSweep_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RunWorkerSweepRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).RunWorkerSweep(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_RunWorkerSweep_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).RunWorkerSweep(ctx, req.(*RunWorkerSweepRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_ReapStuck_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReapStuckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).ReapStuck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_ReapStuck_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).ReapStuck(ctx, req.(*ReapStuckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_ScheduleRetry_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScheduleRetryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).ScheduleRetry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_ScheduleRetry_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).ScheduleRetry(ctx, req.(*ScheduleRetryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_ApplyExtractedData_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApplyExtractedDataRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).ApplyExtractedData(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_ApplyExtractedData_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).ApplyExtractedData(ctx, req.(*ApplyExtractedDataRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_BatchApply_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BatchApplyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).BatchApply(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_BatchApply_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).BatchApply(ctx, req.(*BatchApplyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_GetDiagnostics_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDiagnosticsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).GetDiagnostics(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_GetDiagnostics_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).GetDiagnostics(ctx, req.(*GetDiagnosticsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_AdminRequeue_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AdminRequeueRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).AdminRequeue(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_AdminRequeue_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).AdminRequeue(ctx, req.(*AdminRequeueRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_GetDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).GetDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_GetDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).GetDocument(ctx, req.(*GetDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_ExportCaseReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportCaseReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).ExportCaseReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_ExportCaseReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).ExportCaseReport(ctx, req.(*ExportCaseReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_DeleteCase_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteCaseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).DeleteCase(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_DeleteCase_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).DeleteCase(ctx, req.(*DeleteCaseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PipelineService_ServiceDesc is the grpc.ServiceDesc for PipelineService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PipelineService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "docpipe.v1.PipelineService",
	HandlerType: (*PipelineServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "EnqueueForOCR",
			Handler:    _PipelineService_EnqueueForOCR_Handler,
		},
		{
			MethodName: "RunWorkerSweep",
			Handler:    _PipelineService_RunWorkerSweep_Handler,
		},
		{
			MethodName: "ReapStuck",
			Handler:    _PipelineService_ReapStuck_Handler,
		},
		{
			MethodName: "ScheduleRetry",
			Handler:    _PipelineService_ScheduleRetry_Handler,
		},
		{
			MethodName: "ApplyExtractedData",
			Handler:    _PipelineService_ApplyExtractedData_Handler,
		},
		{
			MethodName: "BatchApply",
			Handler:    _PipelineService_BatchApply_Handler,
		},
		{
			MethodName: "GetDiagnostics",
			Handler:    _PipelineService_GetDiagnostics_Handler,
		},
		{
			MethodName: "AdminRequeue",
			Handler:    _PipelineService_AdminRequeue_Handler,
		},
		{
			MethodName: "GetDocument",
			Handler:    _PipelineService_GetDocument_Handler,
		},
		{
			MethodName: "ExportCaseReport",
			Handler:    _PipelineService_ExportCaseReport_Handler,
		},
		{
			MethodName: "DeleteCase",
			Handler:    _PipelineService_DeleteCase_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "docpipe/v1/pipeline.proto",
}
