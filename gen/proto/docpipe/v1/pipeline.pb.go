// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docpipe/v1/pipeline.proto

package docpipev1

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

type Document struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CaseId             string                 `protobuf:"bytes,2,opt,name=case_id,json=caseId,proto3" json:"case_id,omitempty"`
	StoragePath        string                 `protobuf:"bytes,3,opt,name=storage_path,json=storagePath,proto3" json:"storage_path,omitempty"`
	Filename           string                 `protobuf:"bytes,4,opt,name=filename,proto3" json:"filename,omitempty"`
	FileExt            string                 `protobuf:"bytes,5,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	OcrStatus          string                 `protobuf:"bytes,6,opt,name=ocr_status,json=ocrStatus,proto3" json:"ocr_status,omitempty"`
	RetryCount         int32                  `protobuf:"varint,7,opt,name=retry_count,json=retryCount,proto3" json:"retry_count,omitempty"`
	NextRetryAt        string                 `protobuf:"bytes,8,opt,name=next_retry_at,json=nextRetryAt,proto3" json:"next_retry_at,omitempty"` // RFC3339, empty when unset
	ErrorMessage       string                 `protobuf:"bytes,9,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	DataAppliedToForms bool                   `protobuf:"varint,10,opt,name=data_applied_to_forms,json=dataAppliedToForms,proto3" json:"data_applied_to_forms,omitempty"`
	ExtractedFields    map[string]string      `protobuf:"bytes,11,rep,name=extracted_fields,json=extractedFields,proto3" json:"extracted_fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Version            int32                  `protobuf:"varint,12,opt,name=version,proto3" json:"version,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	UpdatedAt          string                 `protobuf:"bytes,14,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC3339
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetCaseId() string {
	if x != nil {
		return x.CaseId
	}
	return ""
}

func (x *Document) GetStoragePath() string {
	if x != nil {
		return x.StoragePath
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *Document) GetOcrStatus() string {
	if x != nil {
		return x.OcrStatus
	}
	return ""
}

func (x *Document) GetRetryCount() int32 {
	if x != nil {
		return x.RetryCount
	}
	return 0
}

func (x *Document) GetNextRetryAt() string {
	if x != nil {
		return x.NextRetryAt
	}
	return ""
}

func (x *Document) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Document) GetDataAppliedToForms() bool {
	if x != nil {
		return x.DataAppliedToForms
	}
	return false
}

func (x *Document) GetExtractedFields() map[string]string {
	if x != nil {
		return x.ExtractedFields
	}
	return nil
}

func (x *Document) GetVersion() int32 {
	if x != nil {
		return x.Version
	}
	return 0
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type EnqueueForOCRRequest struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	CaseId string                 `protobuf:"bytes,1,opt,name=case_id,json=caseId,proto3" json:"case_id,omitempty"`
	// Empty means every pending document of the case.
	DocumentIds   []string `protobuf:"bytes,2,rep,name=document_ids,json=documentIds,proto3" json:"document_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnqueueForOCRRequest) Reset() {
	*x = EnqueueForOCRRequest{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueForOCRRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueForOCRRequest) ProtoMessage() {}

func (x *EnqueueForOCRRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueForOCRRequest.ProtoReflect.Descriptor instead.
func (*EnqueueForOCRRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{1}
}

func (x *EnqueueForOCRRequest) GetCaseId() string {
	if x != nil {
		return x.CaseId
	}
	return ""
}

func (x *EnqueueForOCRRequest) GetDocumentIds() []string {
	if x != nil {
		return x.DocumentIds
	}
	return nil
}

type EnqueueForOCRResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Enqueued      int32                  `protobuf:"varint,1,opt,name=enqueued,proto3" json:"enqueued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnqueueForOCRResponse) Reset() {
	*x = EnqueueForOCRResponse{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueForOCRResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueForOCRResponse) ProtoMessage() {}

func (x *EnqueueForOCRResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueForOCRResponse.ProtoReflect.Descriptor instead.
func (*EnqueueForOCRResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{2}
}

func (x *EnqueueForOCRResponse) GetEnqueued() int32 {
	if x != nil {
		return x.Enqueued
	}
	return 0
}

type RunWorkerSweepRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunWorkerSweepRequest) Reset() {
	*x = RunWorkerSweepRequest{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunWorkerSweepRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunWorkerSweepRequest) ProtoMessage() {}

func (x *RunWorkerSweepRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunWorkerSweepRequest.ProtoReflect.Descriptor instead.
func (*RunWorkerSweepRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{3}
}

type RunWorkerSweepResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Processed     int32                  `protobuf:"varint,1,opt,name=processed,proto3" json:"processed,omitempty"`
	Succeeded     int32                  `protobuf:"varint,2,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Failed        int32                  `protobuf:"varint,3,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunWorkerSweepResponse) Reset() {
	*x = RunWorkerSweepResponse{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunWorkerSweepResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunWorkerSweepResponse) ProtoMessage() {}

func (x *RunWorkerSweepResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunWorkerSweepResponse.ProtoReflect.Descriptor instead.
func (*RunWorkerSweepResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{4}
}

func (x *RunWorkerSweepResponse) GetProcessed() int32 {
	if x != nil {
		return x.Processed
	}
	return 0
}

func (x *RunWorkerSweepResponse) GetSucceeded() int32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *RunWorkerSweepResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

type ReapStuckRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReapStuckRequest) Reset() {
	*x = ReapStuckRequest{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReapStuckRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReapStuckRequest) ProtoMessage() {}

func (x *ReapStuckRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReapStuckRequest.ProtoReflect.Descriptor instead.
func (*ReapStuckRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{5}
}

type ReapStuckResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reset_        int32                  `protobuf:"varint,1,opt,name=reset,proto3" json:"reset,omitempty"`
	Failed        int32                  `protobuf:"varint,2,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReapStuckResponse) Reset() {
	*x = ReapStuckResponse{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReapStuckResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReapStuckResponse) ProtoMessage() {}

func (x *ReapStuckResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReapStuckResponse.ProtoReflect.Descriptor instead.
func (*ReapStuckResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{6}
}

func (x *ReapStuckResponse) GetReset_() int32 {
	if x != nil {
		return x.Reset_
	}
	return 0
}

func (x *ReapStuckResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

type ScheduleRetryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,2,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScheduleRetryRequest) Reset() {
	*x = ScheduleRetryRequest{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScheduleRetryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScheduleRetryRequest) ProtoMessage() {}

func (x *ScheduleRetryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScheduleRetryRequest.ProtoReflect.Descriptor instead.
func (*ScheduleRetryRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{7}
}

func (x *ScheduleRetryRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ScheduleRetryRequest) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type ScheduleRetryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RetryCount    int32                  `protobuf:"varint,1,opt,name=retry_count,json=retryCount,proto3" json:"retry_count,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	NextRetryAt   string                 `protobuf:"bytes,3,opt,name=next_retry_at,json=nextRetryAt,proto3" json:"next_retry_at,omitempty"` // RFC3339, empty when terminal
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScheduleRetryResponse) Reset() {
	*x = ScheduleRetryResponse{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScheduleRetryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScheduleRetryResponse) ProtoMessage() {}

func (x *ScheduleRetryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScheduleRetryResponse.ProtoReflect.Descriptor instead.
func (*ScheduleRetryResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{8}
}

func (x *ScheduleRetryResponse) GetRetryCount() int32 {
	if x != nil {
		return x.RetryCount
	}
	return 0
}

func (x *ScheduleRetryResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ScheduleRetryResponse) GetNextRetryAt() string {
	if x != nil {
		return x.NextRetryAt
	}
	return ""
}

type FieldConflict struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Field         string                 `protobuf:"bytes,1,opt,name=field,proto3" json:"field,omitempty"`
	Existing      string                 `protobuf:"bytes,2,opt,name=existing,proto3" json:"existing,omitempty"`
	Incoming      string                 `protobuf:"bytes,3,opt,name=incoming,proto3" json:"incoming,omitempty"`
	Overwritten   bool                   `protobuf:"varint,4,opt,name=overwritten,proto3" json:"overwritten,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FieldConflict) Reset() {
	*x = FieldConflict{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldConflict) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldConflict) ProtoMessage() {}

func (x *FieldConflict) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldConflict.ProtoReflect.Descriptor instead.
func (*FieldConflict) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{9}
}

func (x *FieldConflict) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

func (x *FieldConflict) GetExisting() string {
	if x != nil {
		return x.Existing
	}
	return ""
}

func (x *FieldConflict) GetIncoming() string {
	if x != nil {
		return x.Incoming
	}
	return ""
}

func (x *FieldConflict) GetOverwritten() bool {
	if x != nil {
		return x.Overwritten
	}
	return false
}

type ApplyExtractedDataRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	DocumentId      string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	CaseId          string                 `protobuf:"bytes,2,opt,name=case_id,json=caseId,proto3" json:"case_id,omitempty"`
	OverwriteManual bool                   `protobuf:"varint,3,opt,name=overwrite_manual,json=overwriteManual,proto3" json:"overwrite_manual,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ApplyExtractedDataRequest) Reset() {
	*x = ApplyExtractedDataRequest{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyExtractedDataRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyExtractedDataRequest) ProtoMessage() {}

func (x *ApplyExtractedDataRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyExtractedDataRequest.ProtoReflect.Descriptor instead.
func (*ApplyExtractedDataRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{10}
}

func (x *ApplyExtractedDataRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ApplyExtractedDataRequest) GetCaseId() string {
	if x != nil {
		return x.CaseId
	}
	return ""
}

func (x *ApplyExtractedDataRequest) GetOverwriteManual() bool {
	if x != nil {
		return x.OverwriteManual
	}
	return false
}

type ApplyExtractedDataResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Success        bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	AlreadyApplied bool                   `protobuf:"varint,2,opt,name=already_applied,json=alreadyApplied,proto3" json:"already_applied,omitempty"`
	FieldsWritten  int32                  `protobuf:"varint,3,opt,name=fields_written,json=fieldsWritten,proto3" json:"fields_written,omitempty"`
	Conflicts      []*FieldConflict       `protobuf:"bytes,4,rep,name=conflicts,proto3" json:"conflicts,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ApplyExtractedDataResponse) Reset() {
	*x = ApplyExtractedDataResponse{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyExtractedDataResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyExtractedDataResponse) ProtoMessage() {}

func (x *ApplyExtractedDataResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyExtractedDataResponse.ProtoReflect.Descriptor instead.
func (*ApplyExtractedDataResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{11}
}

func (x *ApplyExtractedDataResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ApplyExtractedDataResponse) GetAlreadyApplied() bool {
	if x != nil {
		return x.AlreadyApplied
	}
	return false
}

func (x *ApplyExtractedDataResponse) GetFieldsWritten() int32 {
	if x != nil {
		return x.FieldsWritten
	}
	return 0
}

func (x *ApplyExtractedDataResponse) GetConflicts() []*FieldConflict {
	if x != nil {
		return x.Conflicts
	}
	return nil
}

type BatchApplyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CaseId        string                 `protobuf:"bytes,1,opt,name=case_id,json=caseId,proto3" json:"case_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BatchApplyRequest) Reset() {
	*x = BatchApplyRequest{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BatchApplyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BatchApplyRequest) ProtoMessage() {}

func (x *BatchApplyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BatchApplyRequest.ProtoReflect.Descriptor instead.
func (*BatchApplyRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{12}
}

func (x *BatchApplyRequest) GetCaseId() string {
	if x != nil {
		return x.CaseId
	}
	return ""
}

type BatchApplyError struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BatchApplyError) Reset() {
	*x = BatchApplyError{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BatchApplyError) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BatchApplyError) ProtoMessage() {}

func (x *BatchApplyError) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BatchApplyError.ProtoReflect.Descriptor instead.
func (*BatchApplyError) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{13}
}

func (x *BatchApplyError) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *BatchApplyError) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type BatchApplyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Eligible      int32                  `protobuf:"varint,1,opt,name=eligible,proto3" json:"eligible,omitempty"`
	Applied       int32                  `protobuf:"varint,2,opt,name=applied,proto3" json:"applied,omitempty"`
	Conflicted    int32                  `protobuf:"varint,3,opt,name=conflicted,proto3" json:"conflicted,omitempty"`
	Failed        int32                  `protobuf:"varint,4,opt,name=failed,proto3" json:"failed,omitempty"`
	Outcome       string                 `protobuf:"bytes,5,opt,name=outcome,proto3" json:"outcome,omitempty"`
	Message       string                 `protobuf:"bytes,6,opt,name=message,proto3" json:"message,omitempty"`
	Errors        []*BatchApplyError     `protobuf:"bytes,7,rep,name=errors,proto3" json:"errors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BatchApplyResponse) Reset() {
	*x = BatchApplyResponse{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BatchApplyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BatchApplyResponse) ProtoMessage() {}

func (x *BatchApplyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BatchApplyResponse.ProtoReflect.Descriptor instead.
func (*BatchApplyResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{14}
}

func (x *BatchApplyResponse) GetEligible() int32 {
	if x != nil {
		return x.Eligible
	}
	return 0
}

func (x *BatchApplyResponse) GetApplied() int32 {
	if x != nil {
		return x.Applied
	}
	return 0
}

func (x *BatchApplyResponse) GetConflicted() int32 {
	if x != nil {
		return x.Conflicted
	}
	return 0
}

func (x *BatchApplyResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *BatchApplyResponse) GetOutcome() string {
	if x != nil {
		return x.Outcome
	}
	return ""
}

func (x *BatchApplyResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *BatchApplyResponse) GetErrors() []*BatchApplyError {
	if x != nil {
		return x.Errors
	}
	return nil
}

type GetDiagnosticsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDiagnosticsRequest) Reset() {
	*x = GetDiagnosticsRequest{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDiagnosticsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDiagnosticsRequest) ProtoMessage() {}

func (x *GetDiagnosticsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDiagnosticsRequest.ProtoReflect.Descriptor instead.
func (*GetDiagnosticsRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{15}
}

type ProcessingLogEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Attempt       int32                  `protobuf:"varint,2,opt,name=attempt,proto3" json:"attempt,omitempty"`
	Phase         string                 `protobuf:"bytes,3,opt,name=phase,proto3" json:"phase,omitempty"`
	Outcome       string                 `protobuf:"bytes,4,opt,name=outcome,proto3" json:"outcome,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,5,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	StartedAt     string                 `protobuf:"bytes,6,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`    // RFC3339
	FinishedAt    string                 `protobuf:"bytes,7,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"` // RFC3339, empty when unset
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessingLogEntry) Reset() {
	*x = ProcessingLogEntry{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessingLogEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessingLogEntry) ProtoMessage() {}

func (x *ProcessingLogEntry) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessingLogEntry.ProtoReflect.Descriptor instead.
func (*ProcessingLogEntry) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{16}
}

func (x *ProcessingLogEntry) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ProcessingLogEntry) GetAttempt() int32 {
	if x != nil {
		return x.Attempt
	}
	return 0
}

func (x *ProcessingLogEntry) GetPhase() string {
	if x != nil {
		return x.Phase
	}
	return ""
}

func (x *ProcessingLogEntry) GetOutcome() string {
	if x != nil {
		return x.Outcome
	}
	return ""
}

func (x *ProcessingLogEntry) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ProcessingLogEntry) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ProcessingLogEntry) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type GetDiagnosticsResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	QueueDepth        int32                  `protobuf:"varint,1,opt,name=queue_depth,json=queueDepth,proto3" json:"queue_depth,omitempty"`
	ProcessingCount   int32                  `protobuf:"varint,2,opt,name=processing_count,json=processingCount,proto3" json:"processing_count,omitempty"`
	StuckCount        int32                  `protobuf:"varint,3,opt,name=stuck_count,json=stuckCount,proto3" json:"stuck_count,omitempty"`
	TerminalCounts    map[string]int32       `protobuf:"bytes,4,rep,name=terminal_counts,json=terminalCounts,proto3" json:"terminal_counts,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	OverdueRetries    []*Document            `protobuf:"bytes,5,rep,name=overdue_retries,json=overdueRetries,proto3" json:"overdue_retries,omitempty"`
	RetryDistribution map[int32]int32        `protobuf:"bytes,6,rep,name=retry_distribution,json=retryDistribution,proto3" json:"retry_distribution,omitempty" protobuf_key:"varint,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	RecentFailures    []*ProcessingLogEntry  `protobuf:"bytes,7,rep,name=recent_failures,json=recentFailures,proto3" json:"recent_failures,omitempty"`
	GeneratedAt       string                 `protobuf:"bytes,8,opt,name=generated_at,json=generatedAt,proto3" json:"generated_at,omitempty"` // RFC3339
	TerminalDocuments []*Document            `protobuf:"bytes,9,rep,name=terminal_documents,json=terminalDocuments,proto3" json:"terminal_documents,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *GetDiagnosticsResponse) Reset() {
	*x = GetDiagnosticsResponse{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDiagnosticsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDiagnosticsResponse) ProtoMessage() {}

func (x *GetDiagnosticsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDiagnosticsResponse.ProtoReflect.Descriptor instead.
func (*GetDiagnosticsResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{17}
}

func (x *GetDiagnosticsResponse) GetQueueDepth() int32 {
	if x != nil {
		return x.QueueDepth
	}
	return 0
}

func (x *GetDiagnosticsResponse) GetProcessingCount() int32 {
	if x != nil {
		return x.ProcessingCount
	}
	return 0
}

func (x *GetDiagnosticsResponse) GetStuckCount() int32 {
	if x != nil {
		return x.StuckCount
	}
	return 0
}

func (x *GetDiagnosticsResponse) GetTerminalCounts() map[string]int32 {
	if x != nil {
		return x.TerminalCounts
	}
	return nil
}

func (x *GetDiagnosticsResponse) GetOverdueRetries() []*Document {
	if x != nil {
		return x.OverdueRetries
	}
	return nil
}

func (x *GetDiagnosticsResponse) GetRetryDistribution() map[int32]int32 {
	if x != nil {
		return x.RetryDistribution
	}
	return nil
}

func (x *GetDiagnosticsResponse) GetRecentFailures() []*ProcessingLogEntry {
	if x != nil {
		return x.RecentFailures
	}
	return nil
}

func (x *GetDiagnosticsResponse) GetGeneratedAt() string {
	if x != nil {
		return x.GeneratedAt
	}
	return ""
}

func (x *GetDiagnosticsResponse) GetTerminalDocuments() []*Document {
	if x != nil {
		return x.TerminalDocuments
	}
	return nil
}

type AdminRequeueRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AdminRequeueRequest) Reset() {
	*x = AdminRequeueRequest{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdminRequeueRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdminRequeueRequest) ProtoMessage() {}

func (x *AdminRequeueRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdminRequeueRequest.ProtoReflect.Descriptor instead.
func (*AdminRequeueRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{18}
}

func (x *AdminRequeueRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type AdminRequeueResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AdminRequeueResponse) Reset() {
	*x = AdminRequeueResponse{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdminRequeueResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdminRequeueResponse) ProtoMessage() {}

func (x *AdminRequeueResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdminRequeueResponse.ProtoReflect.Descriptor instead.
func (*AdminRequeueResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{19}
}

func (x *AdminRequeueResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{20}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{21}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ExportCaseReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CaseId        string                 `protobuf:"bytes,1,opt,name=case_id,json=caseId,proto3" json:"case_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCaseReportRequest) Reset() {
	*x = ExportCaseReportRequest{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCaseReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCaseReportRequest) ProtoMessage() {}

func (x *ExportCaseReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCaseReportRequest.ProtoReflect.Descriptor instead.
func (*ExportCaseReportRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{22}
}

func (x *ExportCaseReportRequest) GetCaseId() string {
	if x != nil {
		return x.CaseId
	}
	return ""
}

type ExportCaseReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCaseReportResponse) Reset() {
	*x = ExportCaseReportResponse{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCaseReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCaseReportResponse) ProtoMessage() {}

func (x *ExportCaseReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCaseReportResponse.ProtoReflect.Descriptor instead.
func (*ExportCaseReportResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{23}
}

func (x *ExportCaseReportResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type DeleteCaseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CaseId        string                 `protobuf:"bytes,1,opt,name=case_id,json=caseId,proto3" json:"case_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteCaseRequest) Reset() {
	*x = DeleteCaseRequest{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteCaseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteCaseRequest) ProtoMessage() {}

func (x *DeleteCaseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteCaseRequest.ProtoReflect.Descriptor instead.
func (*DeleteCaseRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{24}
}

func (x *DeleteCaseRequest) GetCaseId() string {
	if x != nil {
		return x.CaseId
	}
	return ""
}

type DeleteCaseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       int32                  `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteCaseResponse) Reset() {
	*x = DeleteCaseResponse{}
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteCaseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteCaseResponse) ProtoMessage() {}

func (x *DeleteCaseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_pipeline_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteCaseResponse.ProtoReflect.Descriptor instead.
func (*DeleteCaseResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_pipeline_proto_rawDescGZIP(), []int{25}
}

func (x *DeleteCaseResponse) GetDeleted() int32 {
	if x != nil {
		return x.Deleted
	}
	return 0
}

var File_docpipe_v1_pipeline_proto protoreflect.FileDescriptor

const file_docpipe_v1_pipeline_proto_rawDesc = "" +
	"\n" +
	"\x19docpipe/v1/pipeline.proto\x12\n" +
	"docpipe.v1\"\xbb\x04\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\acase_id\x18\x02 \x01(\tR\x06caseId\x12!\n" +
	"\fstorage_path\x18\x03 \x01(\tR\vstoragePath\x12\x1a\n" +
	"\bfilename\x18\x04 \x01(\tR\bfilename\x12\x19\n" +
	"\bfile_ext\x18\x05 \x01(\tR\afileExt\x12\x1d\n" +
	"\n" +
	"ocr_status\x18\x06 \x01(\tR\tocrStatus\x12\x1f\n" +
	"\vretry_count\x18\a \x01(\x05R\n" +
	"retryCount\x12\"\n" +
	"\rnext_retry_at\x18\b \x01(\tR\vnextRetryAt\x12#\n" +
	"\rerror_message\x18\t \x01(\tR\ferrorMessage\x121\n" +
	"\x15data_applied_to_forms\x18\n" +
	" \x01(\bR\x12dataAppliedToForms\x12T\n" +
	"\x10extracted_fields\x18\v \x03(\v2).docpipe.v1.Document.ExtractedFieldsEntryR\x0fextractedFields\x12\x18\n" +
	"\aversion\x18\f \x01(\x05R\aversion\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0e \x01(\tR\tupdatedAt\x1aB\n" +
	"\x14ExtractedFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"R\n" +
	"\x14EnqueueForOCRRequest\x12\x17\n" +
	"\acase_id\x18\x01 \x01(\tR\x06caseId\x12!\n" +
	"\fdocument_ids\x18\x02 \x03(\tR\vdocumentIds\"3\n" +
	"\x15EnqueueForOCRResponse\x12\x1a\n" +
	"\benqueued\x18\x01 \x01(\x05R\benqueued\"\x17\n" +
	"\x15RunWorkerSweepRequest\"l\n" +
	"\x16RunWorkerSweepResponse\x12\x1c\n" +
	"\tprocessed\x18\x01 \x01(\x05R\tprocessed\x12\x1c\n" +
	"\tsucceeded\x18\x02 \x01(\x05R\tsucceeded\x12\x16\n" +
	"\x06failed\x18\x03 \x01(\x05R\x06failed\"\x12\n" +
	"\x10ReapStuckRequest\"A\n" +
	"\x11ReapStuckResponse\x12\x14\n" +
	"\x05reset\x18\x01 \x01(\x05R\x05reset\x12\x16\n" +
	"\x06failed\x18\x02 \x01(\x05R\x06failed\"\\\n" +
	"\x14ScheduleRetryRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12#\n" +
	"\rerror_message\x18\x02 \x01(\tR\ferrorMessage\"t\n" +
	"\x15ScheduleRetryResponse\x12\x1f\n" +
	"\vretry_count\x18\x01 \x01(\x05R\n" +
	"retryCount\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\"\n" +
	"\rnext_retry_at\x18\x03 \x01(\tR\vnextRetryAt\"\x7f\n" +
	"\rFieldConflict\x12\x14\n" +
	"\x05field\x18\x01 \x01(\tR\x05field\x12\x1a\n" +
	"\bexisting\x18\x02 \x01(\tR\bexisting\x12\x1a\n" +
	"\bincoming\x18\x03 \x01(\tR\bincoming\x12 \n" +
	"\voverwritten\x18\x04 \x01(\bR\voverwritten\"\x80\x01\n" +
	"\x19ApplyExtractedDataRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x17\n" +
	"\acase_id\x18\x02 \x01(\tR\x06caseId\x12)\n" +
	"\x10overwrite_manual\x18\x03 \x01(\bR\x0foverwriteManual\"\xbf\x01\n" +
	"\x1aApplyExtractedDataResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12'\n" +
	"\x0falready_applied\x18\x02 \x01(\bR\x0ealreadyApplied\x12%\n" +
	"\x0efields_written\x18\x03 \x01(\x05R\rfieldsWritten\x127\n" +
	"\tconflicts\x18\x04 \x03(\v2\x19.docpipe.v1.FieldConflictR\tconflicts\",\n" +
	"\x11BatchApplyRequest\x12\x17\n" +
	"\acase_id\x18\x01 \x01(\tR\x06caseId\"L\n" +
	"\x0fBatchApplyError\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\"\xeb\x01\n" +
	"\x12BatchApplyResponse\x12\x1a\n" +
	"\beligible\x18\x01 \x01(\x05R\beligible\x12\x18\n" +
	"\aapplied\x18\x02 \x01(\x05R\aapplied\x12\x1e\n" +
	"\n" +
	"conflicted\x18\x03 \x01(\x05R\n" +
	"conflicted\x12\x16\n" +
	"\x06failed\x18\x04 \x01(\x05R\x06failed\x12\x18\n" +
	"\aoutcome\x18\x05 \x01(\tR\aoutcome\x12\x18\n" +
	"\amessage\x18\x06 \x01(\tR\amessage\x123\n" +
	"\x06errors\x18\a \x03(\v2\x1b.docpipe.v1.BatchApplyErrorR\x06errors\"\x17\n" +
	"\x15GetDiagnosticsRequest\"\xe4\x01\n" +
	"\x12ProcessingLogEntry\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x18\n" +
	"\aattempt\x18\x02 \x01(\x05R\aattempt\x12\x14\n" +
	"\x05phase\x18\x03 \x01(\tR\x05phase\x12\x18\n" +
	"\aoutcome\x18\x04 \x01(\tR\aoutcome\x12#\n" +
	"\rerror_message\x18\x05 \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"started_at\x18\x06 \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\a \x01(\tR\n" +
	"finishedAt\"\xc9\x05\n" +
	"\x16GetDiagnosticsResponse\x12\x1f\n" +
	"\vqueue_depth\x18\x01 \x01(\x05R\n" +
	"queueDepth\x12)\n" +
	"\x10processing_count\x18\x02 \x01(\x05R\x0fprocessingCount\x12\x1f\n" +
	"\vstuck_count\x18\x03 \x01(\x05R\n" +
	"stuckCount\x12_\n" +
	"\x0fterminal_counts\x18\x04 \x03(\v26.docpipe.v1.GetDiagnosticsResponse.TerminalCountsEntryR\x0eterminalCounts\x12=\n" +
	"\x0foverdue_retries\x18\x05 \x03(\v2\x14.docpipe.v1.DocumentR\x0eoverdueRetries\x12h\n" +
	"\x12retry_distribution\x18\x06 \x03(\v29.docpipe.v1.GetDiagnosticsResponse.RetryDistributionEntryR\x11retryDistribution\x12G\n" +
	"\x0frecent_failures\x18\a \x03(\v2\x1e.docpipe.v1.ProcessingLogEntryR\x0erecentFailures\x12!\n" +
	"\fgenerated_at\x18\b \x01(\tR\vgeneratedAt\x12C\n" +
	"\x12terminal_documents\x18\t \x03(\v2\x14.docpipe.v1.DocumentR\x11terminalDocuments\x1aA\n" +
	"\x13TerminalCountsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\x1aD\n" +
	"\x16RetryDistributionEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\x05R\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\"6\n" +
	"\x13AdminRequeueRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"H\n" +
	"\x14AdminRequeueResponse\x120\n" +
	"\bdocument\x18\x01 \x01(\v2\x14.docpipe.v1.DocumentR\bdocument\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"G\n" +
	"\x13GetDocumentResponse\x120\n" +
	"\bdocument\x18\x01 \x01(\v2\x14.docpipe.v1.DocumentR\bdocument\"2\n" +
	"\x17ExportCaseReportRequest\x12\x17\n" +
	"\acase_id\x18\x01 \x01(\tR\x06caseId\".\n" +
	"\x18ExportCaseReportResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\",\n" +
	"\x11DeleteCaseRequest\x12\x17\n" +
	"\acase_id\x18\x01 \x01(\tR\x06caseId\".\n" +
	"\x12DeleteCaseResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\x05R\adeleted2\xba\a\n" +
	"\x0fPipelineService\x12T\n" +
	"\rEnqueueForOCR\x12 .docpipe.v1.EnqueueForOCRRequest\x1a!.docpipe.v1.EnqueueForOCRResponse\x12W\n" +
	"\x0eRunWorkerSweep\x12!.docpipe.v1.RunWorkerSweepRequest\x1a\".docpipe.v1.RunWorkerSweepResponse\x12H\n" +
	"\tReapStuck\x12\x1c.docpipe.v1.ReapStuckRequest\x1a\x1d.docpipe.v1.ReapStuckResponse\x12T\n" +
	"\rScheduleRetry\x12 .docpipe.v1.ScheduleRetryRequest\x1a!.docpipe.v1.ScheduleRetryResponse\x12c\n" +
	"\x12ApplyExtractedData\x12%.docpipe.v1.ApplyExtractedDataRequest\x1a&.docpipe.v1.ApplyExtractedDataResponse\x12K\n" +
	"\n" +
	"BatchApply\x12\x1d.docpipe.v1.BatchApplyRequest\x1a\x1e.docpipe.v1.BatchApplyResponse\x12W\n" +
	"\x0eGetDiagnostics\x12!.docpipe.v1.GetDiagnosticsRequest\x1a\".docpipe.v1.GetDiagnosticsResponse\x12Q\n" +
	"\fAdminRequeue\x12\x1f.docpipe.v1.AdminRequeueRequest\x1a .docpipe.v1.AdminRequeueResponse\x12N\n" +
	"\vGetDocument\x12\x1e.docpipe.v1.GetDocumentRequest\x1a\x1f.docpipe.v1.GetDocumentResponse\x12]\n" +
	"\x10ExportCaseReport\x12#.docpipe.v1.ExportCaseReportRequest\x1a$.docpipe.v1.ExportCaseReportResponse\x12K\n" +
	"\n" +
	"DeleteCase\x12\x1d.docpipe.v1.DeleteCaseRequest\x1a\x1e.docpipe.v1.DeleteCaseResponseBAZ?github.com/kamil-urbanek/docpipe/gen/proto/docpipe/v1;docpipev1b\x06proto3"

var (
	file_docpipe_v1_pipeline_proto_rawDescOnce sync.Once
	file_docpipe_v1_pipeline_proto_rawDescData []byte
)

func file_docpipe_v1_pipeline_proto_rawDescGZIP() []byte {
	file_docpipe_v1_pipeline_proto_rawDescOnce.Do(func() {
		file_docpipe_v1_pipeline_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docpipe_v1_pipeline_proto_rawDesc), len(file_docpipe_v1_pipeline_proto_rawDesc)))
	})
	return file_docpipe_v1_pipeline_proto_rawDescData
}

var file_docpipe_v1_pipeline_proto_msgTypes = make([]protoimpl.MessageInfo, 29)
var file_docpipe_v1_pipeline_proto_goTypes = []any{
	(*Document)(nil),                   // 0: docpipe.v1.Document
	(*EnqueueForOCRRequest)(nil),       // 1: docpipe.v1.EnqueueForOCRRequest
	(*EnqueueForOCRResponse)(nil),      // 2: docpipe.v1.EnqueueForOCRResponse
	(*RunWorkerSweepRequest)(nil),      // 3: docpipe.v1.RunWorkerSweepRequest
	(*RunWorkerSweepResponse)(nil),     // 4: docpipe.v1.RunWorkerSweepResponse
	(*ReapStuckRequest)(nil),           // 5: docpipe.v1.ReapStuckRequest
	(*ReapStuckResponse)(nil),          // 6: docpipe.v1.ReapStuckResponse
	(*ScheduleRetryRequest)(nil),       // 7: docpipe.v1.ScheduleRetryRequest
	(*ScheduleRetryResponse)(nil),      // 8: docpipe.v1.ScheduleRetryResponse
	(*FieldConflict)(nil),              // 9: docpipe.v1.FieldConflict
	(*ApplyExtractedDataRequest)(nil),  // 10: docpipe.v1.ApplyExtractedDataRequest
	(*ApplyExtractedDataResponse)(nil), // 11: docpipe.v1.ApplyExtractedDataResponse
	(*BatchApplyRequest)(nil),          // 12: docpipe.v1.BatchApplyRequest
	(*BatchApplyError)(nil),            // 13: docpipe.v1.BatchApplyError
	(*BatchApplyResponse)(nil),         // 14: docpipe.v1.BatchApplyResponse
	(*GetDiagnosticsRequest)(nil),      // 15: docpipe.v1.GetDiagnosticsRequest
	(*ProcessingLogEntry)(nil),         // 16: docpipe.v1.ProcessingLogEntry
	(*GetDiagnosticsResponse)(nil),     // 17: docpipe.v1.GetDiagnosticsResponse
	(*AdminRequeueRequest)(nil),        // 18: docpipe.v1.AdminRequeueRequest
	(*AdminRequeueResponse)(nil),       // 19: docpipe.v1.AdminRequeueResponse
	(*GetDocumentRequest)(nil),         // 20: docpipe.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),        // 21: docpipe.v1.GetDocumentResponse
	(*ExportCaseReportRequest)(nil),    // 22: docpipe.v1.ExportCaseReportRequest
	(*ExportCaseReportResponse)(nil),   // 23: docpipe.v1.ExportCaseReportResponse
	(*DeleteCaseRequest)(nil),          // 24: docpipe.v1.DeleteCaseRequest
	(*DeleteCaseResponse)(nil),         // 25: docpipe.v1.DeleteCaseResponse
	nil,                                // 26: docpipe.v1.Document.ExtractedFieldsEntry
	nil,                                // 27: docpipe.v1.GetDiagnosticsResponse.TerminalCountsEntry
	nil,                                // 28: docpipe.v1.GetDiagnosticsResponse.RetryDistributionEntry
}
var file_docpipe_v1_pipeline_proto_depIdxs = []int32{
	26, // 0: docpipe.v1.Document.extracted_fields:type_name -> docpipe.v1.Document.ExtractedFieldsEntry
	9,  // 1: docpipe.v1.ApplyExtractedDataResponse.conflicts:type_name -> docpipe.v1.FieldConflict
	13, // 2: docpipe.v1.BatchApplyResponse.errors:type_name -> docpipe.v1.BatchApplyError
	27, // 3: docpipe.v1.GetDiagnosticsResponse.terminal_counts:type_name -> docpipe.v1.GetDiagnosticsResponse.TerminalCountsEntry
	0,  // 4: docpipe.v1.GetDiagnosticsResponse.overdue_retries:type_name -> docpipe.v1.Document
	28, // 5: docpipe.v1.GetDiagnosticsResponse.retry_distribution:type_name -> docpipe.v1.GetDiagnosticsResponse.RetryDistributionEntry
	16, // 6: docpipe.v1.GetDiagnosticsResponse.recent_failures:type_name -> docpipe.v1.ProcessingLogEntry
	0,  // 7: docpipe.v1.GetDiagnosticsResponse.terminal_documents:type_name -> docpipe.v1.Document
	0,  // 8: docpipe.v1.AdminRequeueResponse.document:type_name -> docpipe.v1.Document
	0,  // 9: docpipe.v1.GetDocumentResponse.document:type_name -> docpipe.v1.Document
	1,  // 10: docpipe.v1.PipelineService.EnqueueForOCR:input_type -> docpipe.v1.EnqueueForOCRRequest
	3,  // 11: docpipe.v1.PipelineService.RunWorkerSweep:input_type -> docpipe.v1.RunWorkerSweepRequest
	5,  // 12: docpipe.v1.PipelineService.ReapStuck:input_type -> docpipe.v1.ReapStuckRequest
	7,  // 13: docpipe.v1.PipelineService.ScheduleRetry:input_type -> docpipe.v1.ScheduleRetryRequest
	10, // 14: docpipe.v1.PipelineService.ApplyExtractedData:input_type -> docpipe.v1.ApplyExtractedDataRequest
	12, // 15: docpipe.v1.PipelineService.BatchApply:input_type -> docpipe.v1.BatchApplyRequest
	15, // 16: docpipe.v1.PipelineService.GetDiagnostics:input_type -> docpipe.v1.GetDiagnosticsRequest
	18, // 17: docpipe.v1.PipelineService.AdminRequeue:input_type -> docpipe.v1.AdminRequeueRequest
	20, // 18: docpipe.v1.PipelineService.GetDocument:input_type -> docpipe.v1.GetDocumentRequest
	22, // 19: docpipe.v1.PipelineService.ExportCaseReport:input_type -> docpipe.v1.ExportCaseReportRequest
	24, // 20: docpipe.v1.PipelineService.DeleteCase:input_type -> docpipe.v1.DeleteCaseRequest
	2,  // 21: docpipe.v1.PipelineService.EnqueueForOCR:output_type -> docpipe.v1.EnqueueForOCRResponse
	4,  // 22: docpipe.v1.PipelineService.RunWorkerSweep:output_type -> docpipe.v1.RunWorkerSweepResponse
	6,  // 23: docpipe.v1.PipelineService.ReapStuck:output_type -> docpipe.v1.ReapStuckResponse
	8,  // 24: docpipe.v1.PipelineService.ScheduleRetry:output_type -> docpipe.v1.ScheduleRetryResponse
	11, // 25: docpipe.v1.PipelineService.ApplyExtractedData:output_type -> docpipe.v1.ApplyExtractedDataResponse
	14, // 26: docpipe.v1.PipelineService.BatchApply:output_type -> docpipe.v1.BatchApplyResponse
	17, // 27: docpipe.v1.PipelineService.GetDiagnostics:output_type -> docpipe.v1.GetDiagnosticsResponse
	19, // 28: docpipe.v1.PipelineService.AdminRequeue:output_type -> docpipe.v1.AdminRequeueResponse
	21, // 29: docpipe.v1.PipelineService.GetDocument:output_type -> docpipe.v1.GetDocumentResponse
	23, // 30: docpipe.v1.PipelineService.ExportCaseReport:output_type -> docpipe.v1.ExportCaseReportResponse
	25, // 31: docpipe.v1.PipelineService.DeleteCase:output_type -> docpipe.v1.DeleteCaseResponse
	21, // [21:32] is the sub-list for method output_type
	10, // [10:21] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_docpipe_v1_pipeline_proto_init() }
func file_docpipe_v1_pipeline_proto_init() {
	if File_docpipe_v1_pipeline_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docpipe_v1_pipeline_proto_rawDesc), len(file_docpipe_v1_pipeline_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   29,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_docpipe_v1_pipeline_proto_goTypes,
		DependencyIndexes: file_docpipe_v1_pipeline_proto_depIdxs,
		MessageInfos:      file_docpipe_v1_pipeline_proto_msgTypes,
	}.Build()
	File_docpipe_v1_pipeline_proto = out.File
	file_docpipe_v1_pipeline_proto_goTypes = nil
	file_docpipe_v1_pipeline_proto_depIdxs = nil
}
