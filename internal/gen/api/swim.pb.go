// Protobuf bindings for api/swim.proto, maintained by hand in the
// legacy protoc-gen-go output style. Keep messages and field numbers
// in sync with the proto source when editing.

package api

import (
	context "context"
	fmt "fmt"
	proto "github.com/golang/protobuf/proto"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
	math "math"
)

// Reference imports to suppress errors if they are not otherwise used.
var _ = proto.Marshal
var _ = fmt.Errorf
var _ = math.Inf

// This is a compile-time assertion to ensure that this generated file
// is compatible with the proto package it is being compiled against.
// A compilation error at this line likely means your copy of the
// proto package needs to be updated.
const _ = proto.ProtoPackageIsVersion3 // please upgrade the proto package

// Status mirrors the member status kinds.
type Status int32

const (
	Status_ALIVE       Status = 0
	Status_SUSPECT     Status = 1
	Status_UNREACHABLE Status = 2
	Status_DEAD        Status = 3
)

var Status_name = map[int32]string{
	0: "ALIVE",
	1: "SUSPECT",
	2: "UNREACHABLE",
	3: "DEAD",
}

var Status_value = map[string]int32{
	"ALIVE":       0,
	"SUSPECT":     1,
	"UNREACHABLE": 2,
	"DEAD":        3,
}

func (x Status) String() string {
	return proto.EnumName(Status_name, int32(x))
}

func (Status) EnumDescriptor() ([]byte, []int) {
	return fileDescriptor_77a6fa8d7a4a23fb, []int{0}
}

type HealthResponse_ServingStatus int32

const (
	HealthResponse_OK       HealthResponse_ServingStatus = 0
	HealthResponse_DEGRADED HealthResponse_ServingStatus = 1
)

var HealthResponse_ServingStatus_name = map[int32]string{
	0: "OK",
	1: "DEGRADED",
}

var HealthResponse_ServingStatus_value = map[string]int32{
	"OK":       0,
	"DEGRADED": 1,
}

func (x HealthResponse_ServingStatus) String() string {
	return proto.EnumName(HealthResponse_ServingStatus_name, int32(x))
}

func (HealthResponse_ServingStatus) EnumDescriptor() ([]byte, []int) {
	return fileDescriptor_77a6fa8d7a4a23fb, []int{12, 0}
}

// Node identifies a cluster participant: address plus the unique id
// minted at process start. uid 0 is the address-only form.
type Node struct {
	Addr                 string   `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Uid                  uint64   `protobuf:"varint,2,opt,name=uid,proto3" json:"uid,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Node) Reset()         { *m = Node{} }
func (m *Node) String() string { return proto.CompactTextString(m) }
func (*Node) ProtoMessage()    {}
func (*Node) Descriptor() ([]byte, []int) {
	return fileDescriptor_77a6fa8d7a4a23fb, []int{0}
}

func (m *Node) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_Node.Unmarshal(m, b)
}
func (m *Node) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_Node.Marshal(b, m, deterministic)
}
func (m *Node) XXX_Merge(src proto.Message) {
	xxx_messageInfo_Node.Merge(m, src)
}
func (m *Node) XXX_Size() int {
	return xxx_messageInfo_Node.Size(m)
}
func (m *Node) XXX_DiscardUnknown() {
	xxx_messageInfo_Node.DiscardUnknown(m)
}

var xxx_messageInfo_Node proto.InternalMessageInfo

func (m *Node) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *Node) GetUid() uint64 {
	if m != nil {
		return m.Uid
	}
	return 0
}

// Ping probes the receiver directly.
type Ping struct {
	From                 *Node    `protobuf:"bytes,1,opt,name=from,proto3" json:"from,omitempty"`
	SeqNo                uint64   `protobuf:"varint,2,opt,name=seq_no,json=seqNo,proto3" json:"seq_no,omitempty"`
	Payload              []byte   `protobuf:"bytes,3,opt,name=payload,proto3" json:"payload,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Ping) Reset()         { *m = Ping{} }
func (m *Ping) String() string { return proto.CompactTextString(m) }
func (*Ping) ProtoMessage()    {}
func (*Ping) Descriptor() ([]byte, []int) {
	return fileDescriptor_77a6fa8d7a4a23fb, []int{1}
}

func (m *Ping) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_Ping.Unmarshal(m, b)
}
func (m *Ping) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_Ping.Marshal(b, m, deterministic)
}
func (m *Ping) XXX_Merge(src proto.Message) {
	xxx_messageInfo_Ping.Merge(m, src)
}
func (m *Ping) XXX_Size() int {
	return xxx_messageInfo_Ping.Size(m)
}
func (m *Ping) XXX_DiscardUnknown() {
	xxx_messageInfo_Ping.DiscardUnknown(m)
}

var xxx_messageInfo_Ping proto.InternalMessageInfo

func (m *Ping) GetFrom() *Node {
	if m != nil {
		return m.From
	}
	return nil
}

func (m *Ping) GetSeqNo() uint64 {
	if m != nil {
		return m.SeqNo
	}
	return 0
}

func (m *Ping) GetPayload() []byte {
	if m != nil {
		return m.Payload
	}
	return nil
}

// PingRequest asks the receiver to probe target on the sender's
// behalf.
type PingRequest struct {
	From                 *Node    `protobuf:"bytes,1,opt,name=from,proto3" json:"from,omitempty"`
	Target               *Node    `protobuf:"bytes,2,opt,name=target,proto3" json:"target,omitempty"`
	SeqNo                uint64   `protobuf:"varint,3,opt,name=seq_no,json=seqNo,proto3" json:"seq_no,omitempty"`
	Payload              []byte   `protobuf:"bytes,4,opt,name=payload,proto3" json:"payload,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *PingRequest) Reset()         { *m = PingRequest{} }
func (m *PingRequest) String() string { return proto.CompactTextString(m) }
func (*PingRequest) ProtoMessage()    {}
func (*PingRequest) Descriptor() ([]byte, []int) {
	return fileDescriptor_77a6fa8d7a4a23fb, []int{2}
}

func (m *PingRequest) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_PingRequest.Unmarshal(m, b)
}
func (m *PingRequest) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_PingRequest.Marshal(b, m, deterministic)
}
func (m *PingRequest) XXX_Merge(src proto.Message) {
	xxx_messageInfo_PingRequest.Merge(m, src)
}
func (m *PingRequest) XXX_Size() int {
	return xxx_messageInfo_PingRequest.Size(m)
}
func (m *PingRequest) XXX_DiscardUnknown() {
	xxx_messageInfo_PingRequest.DiscardUnknown(m)
}

var xxx_messageInfo_PingRequest proto.InternalMessageInfo

func (m *PingRequest) GetFrom() *Node {
	if m != nil {
		return m.From
	}
	return nil
}

func (m *PingRequest) GetTarget() *Node {
	if m != nil {
		return m.Target
	}
	return nil
}

func (m *PingRequest) GetSeqNo() uint64 {
	if m != nil {
		return m.SeqNo
	}
	return 0
}

func (m *PingRequest) GetPayload() []byte {
	if m != nil {
		return m.Payload
	}
	return nil
}

// Ack answers a probe identified by seq_no, acknowledging target.
type Ack struct {
	From                 *Node    `protobuf:"bytes,1,opt,name=from,proto3" json:"from,omitempty"`
	Target               *Node    `protobuf:"bytes,2,opt,name=target,proto3" json:"target,omitempty"`
	SeqNo                uint64   `protobuf:"varint,3,opt,name=seq_no,json=seqNo,proto3" json:"seq_no,omitempty"`
	Incarnation          uint64   `protobuf:"varint,4,opt,name=incarnation,proto3" json:"incarnation,omitempty"`
	Payload              []byte   `protobuf:"bytes,5,opt,name=payload,proto3" json:"payload,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Ack) Reset()         { *m = Ack{} }
func (m *Ack) String() string { return proto.CompactTextString(m) }
func (*Ack) ProtoMessage()    {}
func (*Ack) Descriptor() ([]byte, []int) {
	return fileDescriptor_77a6fa8d7a4a23fb, []int{3}
}

func (m *Ack) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_Ack.Unmarshal(m, b)
}
func (m *Ack) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_Ack.Marshal(b, m, deterministic)
}
func (m *Ack) XXX_Merge(src proto.Message) {
	xxx_messageInfo_Ack.Merge(m, src)
}
func (m *Ack) XXX_Size() int {
	return xxx_messageInfo_Ack.Size(m)
}
func (m *Ack) XXX_DiscardUnknown() {
	xxx_messageInfo_Ack.DiscardUnknown(m)
}

var xxx_messageInfo_Ack proto.InternalMessageInfo

func (m *Ack) GetFrom() *Node {
	if m != nil {
		return m.From
	}
	return nil
}

func (m *Ack) GetTarget() *Node {
	if m != nil {
		return m.Target
	}
	return nil
}

func (m *Ack) GetSeqNo() uint64 {
	if m != nil {
		return m.SeqNo
	}
	return 0
}

func (m *Ack) GetIncarnation() uint64 {
	if m != nil {
		return m.Incarnation
	}
	return 0
}

func (m *Ack) GetPayload() []byte {
	if m != nil {
		return m.Payload
	}
	return nil
}

// Nack answers an indirect probe: the relay could not reach target.
type Nack struct {
	From                 *Node    `protobuf:"bytes,1,opt,name=from,proto3" json:"from,omitempty"`
	Target               *Node    `protobuf:"bytes,2,opt,name=target,proto3" json:"target,omitempty"`
	SeqNo                uint64   `protobuf:"varint,3,opt,name=seq_no,json=seqNo,proto3" json:"seq_no,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Nack) Reset()         { *m = Nack{} }
func (m *Nack) String() string { return proto.CompactTextString(m) }
func (*Nack) ProtoMessage()    {}
func (*Nack) Descriptor() ([]byte, []int) {
	return fileDescriptor_77a6fa8d7a4a23fb, []int{4}
}

func (m *Nack) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_Nack.Unmarshal(m, b)
}
func (m *Nack) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_Nack.Marshal(b, m, deterministic)
}
func (m *Nack) XXX_Merge(src proto.Message) {
	xxx_messageInfo_Nack.Merge(m, src)
}
func (m *Nack) XXX_Size() int {
	return xxx_messageInfo_Nack.Size(m)
}
func (m *Nack) XXX_DiscardUnknown() {
	xxx_messageInfo_Nack.DiscardUnknown(m)
}

var xxx_messageInfo_Nack proto.InternalMessageInfo

func (m *Nack) GetFrom() *Node {
	if m != nil {
		return m.From
	}
	return nil
}

func (m *Nack) GetTarget() *Node {
	if m != nil {
		return m.Target
	}
	return nil
}

func (m *Nack) GetSeqNo() uint64 {
	if m != nil {
		return m.SeqNo
	}
	return 0
}

// Envelope is the single datagram-style unit carried by the Swim
// service.
type Envelope struct {
	// Types that are valid to be assigned to Msg:
	//	*Envelope_Ping
	//	*Envelope_PingRequest
	//	*Envelope_Ack
	//	*Envelope_Nack
	Msg                  isEnvelope_Msg `protobuf_oneof:"msg"`
	XXX_NoUnkeyedLiteral struct{}       `json:"-"`
	XXX_unrecognized     []byte         `json:"-"`
	XXX_sizecache        int32          `json:"-"`
}

func (m *Envelope) Reset()         { *m = Envelope{} }
func (m *Envelope) String() string { return proto.CompactTextString(m) }
func (*Envelope) ProtoMessage()    {}
func (*Envelope) Descriptor() ([]byte, []int) {
	return fileDescriptor_77a6fa8d7a4a23fb, []int{5}
}

func (m *Envelope) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_Envelope.Unmarshal(m, b)
}
func (m *Envelope) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_Envelope.Marshal(b, m, deterministic)
}
func (m *Envelope) XXX_Merge(src proto.Message) {
	xxx_messageInfo_Envelope.Merge(m, src)
}
func (m *Envelope) XXX_Size() int {
	return xxx_messageInfo_Envelope.Size(m)
}
func (m *Envelope) XXX_DiscardUnknown() {
	xxx_messageInfo_Envelope.DiscardUnknown(m)
}

var xxx_messageInfo_Envelope proto.InternalMessageInfo

type isEnvelope_Msg interface {
	isEnvelope_Msg()
}

type Envelope_Ping struct {
	Ping *Ping `protobuf:"bytes,1,opt,name=ping,proto3,oneof"`
}

type Envelope_PingRequest struct {
	PingRequest *PingRequest `protobuf:"bytes,2,opt,name=ping_request,json=pingRequest,proto3,oneof"`
}

type Envelope_Ack struct {
	Ack *Ack `protobuf:"bytes,3,opt,name=ack,proto3,oneof"`
}

type Envelope_Nack struct {
	Nack *Nack `protobuf:"bytes,4,opt,name=nack,proto3,oneof"`
}

func (*Envelope_Ping) isEnvelope_Msg() {}

func (*Envelope_PingRequest) isEnvelope_Msg() {}

func (*Envelope_Ack) isEnvelope_Msg() {}

func (*Envelope_Nack) isEnvelope_Msg() {}

func (m *Envelope) GetMsg() isEnvelope_Msg {
	if m != nil {
		return m.Msg
	}
	return nil
}

func (m *Envelope) GetPing() *Ping {
	if x, ok := m.GetMsg().(*Envelope_Ping); ok {
		return x.Ping
	}
	return nil
}

func (m *Envelope) GetPingRequest() *PingRequest {
	if x, ok := m.GetMsg().(*Envelope_PingRequest); ok {
		return x.PingRequest
	}
	return nil
}

func (m *Envelope) GetAck() *Ack {
	if x, ok := m.GetMsg().(*Envelope_Ack); ok {
		return x.Ack
	}
	return nil
}

func (m *Envelope) GetNack() *Nack {
	if x, ok := m.GetMsg().(*Envelope_Nack); ok {
		return x.Nack
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*Envelope) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*Envelope_Ping)(nil),
		(*Envelope_PingRequest)(nil),
		(*Envelope_Ack)(nil),
		(*Envelope_Nack)(nil),
	}
}

type SendReply struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *SendReply) Reset()         { *m = SendReply{} }
func (m *SendReply) String() string { return proto.CompactTextString(m) }
func (*SendReply) ProtoMessage()    {}
func (*SendReply) Descriptor() ([]byte, []int) {
	return fileDescriptor_77a6fa8d7a4a23fb, []int{6}
}

func (m *SendReply) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_SendReply.Unmarshal(m, b)
}
func (m *SendReply) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_SendReply.Marshal(b, m, deterministic)
}
func (m *SendReply) XXX_Merge(src proto.Message) {
	xxx_messageInfo_SendReply.Merge(m, src)
}
func (m *SendReply) XXX_Size() int {
	return xxx_messageInfo_SendReply.Size(m)
}
func (m *SendReply) XXX_DiscardUnknown() {
	xxx_messageInfo_SendReply.DiscardUnknown(m)
}

var xxx_messageInfo_SendReply proto.InternalMessageInfo

// MemberState is one gossiped member status rumor.
type MemberState struct {
	Node                 *Node    `protobuf:"bytes,1,opt,name=node,proto3" json:"node,omitempty"`
	Status               Status   `protobuf:"varint,2,opt,name=status,proto3,enum=api.Status" json:"status,omitempty"`
	Incarnation          uint64   `protobuf:"varint,3,opt,name=incarnation,proto3" json:"incarnation,omitempty"`
	SuspectedBy          []uint64 `protobuf:"varint,4,rep,packed,name=suspected_by,json=suspectedBy,proto3" json:"suspected_by,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *MemberState) Reset()         { *m = MemberState{} }
func (m *MemberState) String() string { return proto.CompactTextString(m) }
func (*MemberState) ProtoMessage()    {}
func (*MemberState) Descriptor() ([]byte, []int) {
	return fileDescriptor_77a6fa8d7a4a23fb, []int{7}
}

func (m *MemberState) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_MemberState.Unmarshal(m, b)
}
func (m *MemberState) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_MemberState.Marshal(b, m, deterministic)
}
func (m *MemberState) XXX_Merge(src proto.Message) {
	xxx_messageInfo_MemberState.Merge(m, src)
}
func (m *MemberState) XXX_Size() int {
	return xxx_messageInfo_MemberState.Size(m)
}
func (m *MemberState) XXX_DiscardUnknown() {
	xxx_messageInfo_MemberState.DiscardUnknown(m)
}

var xxx_messageInfo_MemberState proto.InternalMessageInfo

func (m *MemberState) GetNode() *Node {
	if m != nil {
		return m.Node
	}
	return nil
}

func (m *MemberState) GetStatus() Status {
	if m != nil {
		return m.Status
	}
	return Status_ALIVE
}

func (m *MemberState) GetIncarnation() uint64 {
	if m != nil {
		return m.Incarnation
	}
	return 0
}

func (m *MemberState) GetSuspectedBy() []uint64 {
	if m != nil {
		return m.SuspectedBy
	}
	return nil
}

// GossipPayload is the piggyback the engine attaches to protocol
// messages.
type GossipPayload struct {
	Members              []*MemberState `protobuf:"bytes,1,rep,name=members,proto3" json:"members,omitempty"`
	XXX_NoUnkeyedLiteral struct{}       `json:"-"`
	XXX_unrecognized     []byte         `json:"-"`
	XXX_sizecache        int32          `json:"-"`
}

func (m *GossipPayload) Reset()         { *m = GossipPayload{} }
func (m *GossipPayload) String() string { return proto.CompactTextString(m) }
func (*GossipPayload) ProtoMessage()    {}
func (*GossipPayload) Descriptor() ([]byte, []int) {
	return fileDescriptor_77a6fa8d7a4a23fb, []int{8}
}

func (m *GossipPayload) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_GossipPayload.Unmarshal(m, b)
}
func (m *GossipPayload) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_GossipPayload.Marshal(b, m, deterministic)
}
func (m *GossipPayload) XXX_Merge(src proto.Message) {
	xxx_messageInfo_GossipPayload.Merge(m, src)
}
func (m *GossipPayload) XXX_Size() int {
	return xxx_messageInfo_GossipPayload.Size(m)
}
func (m *GossipPayload) XXX_DiscardUnknown() {
	xxx_messageInfo_GossipPayload.DiscardUnknown(m)
}

var xxx_messageInfo_GossipPayload proto.InternalMessageInfo

func (m *GossipPayload) GetMembers() []*MemberState {
	if m != nil {
		return m.Members
	}
	return nil
}

type MembersRequest struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *MembersRequest) Reset()         { *m = MembersRequest{} }
func (m *MembersRequest) String() string { return proto.CompactTextString(m) }
func (*MembersRequest) ProtoMessage()    {}
func (*MembersRequest) Descriptor() ([]byte, []int) {
	return fileDescriptor_77a6fa8d7a4a23fb, []int{9}
}

func (m *MembersRequest) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_MembersRequest.Unmarshal(m, b)
}
func (m *MembersRequest) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_MembersRequest.Marshal(b, m, deterministic)
}
func (m *MembersRequest) XXX_Merge(src proto.Message) {
	xxx_messageInfo_MembersRequest.Merge(m, src)
}
func (m *MembersRequest) XXX_Size() int {
	return xxx_messageInfo_MembersRequest.Size(m)
}
func (m *MembersRequest) XXX_DiscardUnknown() {
	xxx_messageInfo_MembersRequest.DiscardUnknown(m)
}

var xxx_messageInfo_MembersRequest proto.InternalMessageInfo

type MembersResponse struct {
	Local                *Node          `protobuf:"bytes,1,opt,name=local,proto3" json:"local,omitempty"`
	Members              []*MemberState `protobuf:"bytes,2,rep,name=members,proto3" json:"members,omitempty"`
	XXX_NoUnkeyedLiteral struct{}       `json:"-"`
	XXX_unrecognized     []byte         `json:"-"`
	XXX_sizecache        int32          `json:"-"`
}

func (m *MembersResponse) Reset()         { *m = MembersResponse{} }
func (m *MembersResponse) String() string { return proto.CompactTextString(m) }
func (*MembersResponse) ProtoMessage()    {}
func (*MembersResponse) Descriptor() ([]byte, []int) {
	return fileDescriptor_77a6fa8d7a4a23fb, []int{10}
}

func (m *MembersResponse) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_MembersResponse.Unmarshal(m, b)
}
func (m *MembersResponse) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_MembersResponse.Marshal(b, m, deterministic)
}
func (m *MembersResponse) XXX_Merge(src proto.Message) {
	xxx_messageInfo_MembersResponse.Merge(m, src)
}
func (m *MembersResponse) XXX_Size() int {
	return xxx_messageInfo_MembersResponse.Size(m)
}
func (m *MembersResponse) XXX_DiscardUnknown() {
	xxx_messageInfo_MembersResponse.DiscardUnknown(m)
}

var xxx_messageInfo_MembersResponse proto.InternalMessageInfo

func (m *MembersResponse) GetLocal() *Node {
	if m != nil {
		return m.Local
	}
	return nil
}

func (m *MembersResponse) GetMembers() []*MemberState {
	if m != nil {
		return m.Members
	}
	return nil
}

type HealthRequest struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *HealthRequest) Reset()         { *m = HealthRequest{} }
func (m *HealthRequest) String() string { return proto.CompactTextString(m) }
func (*HealthRequest) ProtoMessage()    {}
func (*HealthRequest) Descriptor() ([]byte, []int) {
	return fileDescriptor_77a6fa8d7a4a23fb, []int{11}
}

func (m *HealthRequest) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_HealthRequest.Unmarshal(m, b)
}
func (m *HealthRequest) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_HealthRequest.Marshal(b, m, deterministic)
}
func (m *HealthRequest) XXX_Merge(src proto.Message) {
	xxx_messageInfo_HealthRequest.Merge(m, src)
}
func (m *HealthRequest) XXX_Size() int {
	return xxx_messageInfo_HealthRequest.Size(m)
}
func (m *HealthRequest) XXX_DiscardUnknown() {
	xxx_messageInfo_HealthRequest.DiscardUnknown(m)
}

var xxx_messageInfo_HealthRequest proto.InternalMessageInfo

type HealthResponse struct {
	Status               HealthResponse_ServingStatus `protobuf:"varint,1,opt,name=status,proto3,enum=api.HealthResponse_ServingStatus" json:"status,omitempty"`
	Node                 *Node                        `protobuf:"bytes,2,opt,name=node,proto3" json:"node,omitempty"`
	UptimeSeconds        uint64                       `protobuf:"varint,3,opt,name=uptime_seconds,json=uptimeSeconds,proto3" json:"uptime_seconds,omitempty"`
	XXX_NoUnkeyedLiteral struct{}                     `json:"-"`
	XXX_unrecognized     []byte                       `json:"-"`
	XXX_sizecache        int32                        `json:"-"`
}

func (m *HealthResponse) Reset()         { *m = HealthResponse{} }
func (m *HealthResponse) String() string { return proto.CompactTextString(m) }
func (*HealthResponse) ProtoMessage()    {}
func (*HealthResponse) Descriptor() ([]byte, []int) {
	return fileDescriptor_77a6fa8d7a4a23fb, []int{12}
}

func (m *HealthResponse) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_HealthResponse.Unmarshal(m, b)
}
func (m *HealthResponse) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_HealthResponse.Marshal(b, m, deterministic)
}
func (m *HealthResponse) XXX_Merge(src proto.Message) {
	xxx_messageInfo_HealthResponse.Merge(m, src)
}
func (m *HealthResponse) XXX_Size() int {
	return xxx_messageInfo_HealthResponse.Size(m)
}
func (m *HealthResponse) XXX_DiscardUnknown() {
	xxx_messageInfo_HealthResponse.DiscardUnknown(m)
}

var xxx_messageInfo_HealthResponse proto.InternalMessageInfo

func (m *HealthResponse) GetStatus() HealthResponse_ServingStatus {
	if m != nil {
		return m.Status
	}
	return HealthResponse_OK
}

func (m *HealthResponse) GetNode() *Node {
	if m != nil {
		return m.Node
	}
	return nil
}

func (m *HealthResponse) GetUptimeSeconds() uint64 {
	if m != nil {
		return m.UptimeSeconds
	}
	return 0
}

type MonitorRequest struct {
	Node                 *Node    `protobuf:"bytes,1,opt,name=node,proto3" json:"node,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *MonitorRequest) Reset()         { *m = MonitorRequest{} }
func (m *MonitorRequest) String() string { return proto.CompactTextString(m) }
func (*MonitorRequest) ProtoMessage()    {}
func (*MonitorRequest) Descriptor() ([]byte, []int) {
	return fileDescriptor_77a6fa8d7a4a23fb, []int{13}
}

func (m *MonitorRequest) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_MonitorRequest.Unmarshal(m, b)
}
func (m *MonitorRequest) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_MonitorRequest.Marshal(b, m, deterministic)
}
func (m *MonitorRequest) XXX_Merge(src proto.Message) {
	xxx_messageInfo_MonitorRequest.Merge(m, src)
}
func (m *MonitorRequest) XXX_Size() int {
	return xxx_messageInfo_MonitorRequest.Size(m)
}
func (m *MonitorRequest) XXX_DiscardUnknown() {
	xxx_messageInfo_MonitorRequest.DiscardUnknown(m)
}

var xxx_messageInfo_MonitorRequest proto.InternalMessageInfo

func (m *MonitorRequest) GetNode() *Node {
	if m != nil {
		return m.Node
	}
	return nil
}

type MonitorResponse struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *MonitorResponse) Reset()         { *m = MonitorResponse{} }
func (m *MonitorResponse) String() string { return proto.CompactTextString(m) }
func (*MonitorResponse) ProtoMessage()    {}
func (*MonitorResponse) Descriptor() ([]byte, []int) {
	return fileDescriptor_77a6fa8d7a4a23fb, []int{14}
}

func (m *MonitorResponse) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_MonitorResponse.Unmarshal(m, b)
}
func (m *MonitorResponse) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_MonitorResponse.Marshal(b, m, deterministic)
}
func (m *MonitorResponse) XXX_Merge(src proto.Message) {
	xxx_messageInfo_MonitorResponse.Merge(m, src)
}
func (m *MonitorResponse) XXX_Size() int {
	return xxx_messageInfo_MonitorResponse.Size(m)
}
func (m *MonitorResponse) XXX_DiscardUnknown() {
	xxx_messageInfo_MonitorResponse.DiscardUnknown(m)
}

var xxx_messageInfo_MonitorResponse proto.InternalMessageInfo

type ConfirmDeadRequest struct {
	Node                 *Node    `protobuf:"bytes,1,opt,name=node,proto3" json:"node,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *ConfirmDeadRequest) Reset()         { *m = ConfirmDeadRequest{} }
func (m *ConfirmDeadRequest) String() string { return proto.CompactTextString(m) }
func (*ConfirmDeadRequest) ProtoMessage()    {}
func (*ConfirmDeadRequest) Descriptor() ([]byte, []int) {
	return fileDescriptor_77a6fa8d7a4a23fb, []int{15}
}

func (m *ConfirmDeadRequest) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_ConfirmDeadRequest.Unmarshal(m, b)
}
func (m *ConfirmDeadRequest) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_ConfirmDeadRequest.Marshal(b, m, deterministic)
}
func (m *ConfirmDeadRequest) XXX_Merge(src proto.Message) {
	xxx_messageInfo_ConfirmDeadRequest.Merge(m, src)
}
func (m *ConfirmDeadRequest) XXX_Size() int {
	return xxx_messageInfo_ConfirmDeadRequest.Size(m)
}
func (m *ConfirmDeadRequest) XXX_DiscardUnknown() {
	xxx_messageInfo_ConfirmDeadRequest.DiscardUnknown(m)
}

var xxx_messageInfo_ConfirmDeadRequest proto.InternalMessageInfo

func (m *ConfirmDeadRequest) GetNode() *Node {
	if m != nil {
		return m.Node
	}
	return nil
}

type ConfirmDeadResponse struct {
	Applied              bool     `protobuf:"varint,1,opt,name=applied,proto3" json:"applied,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *ConfirmDeadResponse) Reset()         { *m = ConfirmDeadResponse{} }
func (m *ConfirmDeadResponse) String() string { return proto.CompactTextString(m) }
func (*ConfirmDeadResponse) ProtoMessage()    {}
func (*ConfirmDeadResponse) Descriptor() ([]byte, []int) {
	return fileDescriptor_77a6fa8d7a4a23fb, []int{16}
}

func (m *ConfirmDeadResponse) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_ConfirmDeadResponse.Unmarshal(m, b)
}
func (m *ConfirmDeadResponse) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_ConfirmDeadResponse.Marshal(b, m, deterministic)
}
func (m *ConfirmDeadResponse) XXX_Merge(src proto.Message) {
	xxx_messageInfo_ConfirmDeadResponse.Merge(m, src)
}
func (m *ConfirmDeadResponse) XXX_Size() int {
	return xxx_messageInfo_ConfirmDeadResponse.Size(m)
}
func (m *ConfirmDeadResponse) XXX_DiscardUnknown() {
	xxx_messageInfo_ConfirmDeadResponse.DiscardUnknown(m)
}

var xxx_messageInfo_ConfirmDeadResponse proto.InternalMessageInfo

func (m *ConfirmDeadResponse) GetApplied() bool {
	if m != nil {
		return m.Applied
	}
	return false
}

func init() {
	proto.RegisterEnum("api.Status", Status_name, Status_value)
	proto.RegisterEnum("api.HealthResponse_ServingStatus", HealthResponse_ServingStatus_name, HealthResponse_ServingStatus_value)
	proto.RegisterType((*Node)(nil), "api.Node")
	proto.RegisterType((*Ping)(nil), "api.Ping")
	proto.RegisterType((*PingRequest)(nil), "api.PingRequest")
	proto.RegisterType((*Ack)(nil), "api.Ack")
	proto.RegisterType((*Nack)(nil), "api.Nack")
	proto.RegisterType((*Envelope)(nil), "api.Envelope")
	proto.RegisterType((*SendReply)(nil), "api.SendReply")
	proto.RegisterType((*MemberState)(nil), "api.MemberState")
	proto.RegisterType((*GossipPayload)(nil), "api.GossipPayload")
	proto.RegisterType((*MembersRequest)(nil), "api.MembersRequest")
	proto.RegisterType((*MembersResponse)(nil), "api.MembersResponse")
	proto.RegisterType((*HealthRequest)(nil), "api.HealthRequest")
	proto.RegisterType((*HealthResponse)(nil), "api.HealthResponse")
	proto.RegisterType((*MonitorRequest)(nil), "api.MonitorRequest")
	proto.RegisterType((*MonitorResponse)(nil), "api.MonitorResponse")
	proto.RegisterType((*ConfirmDeadRequest)(nil), "api.ConfirmDeadRequest")
	proto.RegisterType((*ConfirmDeadResponse)(nil), "api.ConfirmDeadResponse")
}

// fileDescriptor_77a6fa8d7a4a23fb is the gzipped FileDescriptorProto
// describing api/swim.proto, matching the struct tags below field
// for field so the proto runtime's legacy descriptor loader can
// resolve nested message types without falling back to reflection.
var fileDescriptor_77a6fa8d7a4a23fb = []byte{
	// 784 bytes of a gzipped FileDescriptorProto
	0x1f, 0x8b, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0xff, 0xb4, 0x55, 
	0xdd, 0x8e, 0xdb, 0x44, 0x14, 0x8e, 0x63, 0xe7, 0x67, 0x8f, 0x37, 0x59, 
	0x33, 0x0b, 0xc2, 0x5a, 0x15, 0x48, 0x8d, 0x22, 0x45, 0x15, 0x24, 0x22, 
	0x85, 0x0b, 0xb4, 0x37, 0x24, 0x1b, 0xab, 0x41, 0xb4, 0x61, 0x35, 0xa6, 
	0xbd, 0xe0, 0x82, 0x68, 0x36, 0x9e, 0x86, 0xd1, 0xda, 0x33, 0xb3, 0x1e, 
	0xa7, 0x55, 0xee, 0x78, 0x0e, 0x9e, 0x80, 0x47, 0xe0, 0x99, 0x78, 0x0a, 
	0xe4, 0xb1, 0x1d, 0xd9, 0xcd, 0x42, 0x7b, 0xb3, 0x57, 0x3b, 0xfe, 0xce, 
	0x99, 0xf3, 0x9d, 0xf3, 0x7d, 0x67, 0x36, 0xd0, 0x27, 0x92, 0x4d, 0xd4, 
	0x5b, 0x16, 0x8f, 0x65, 0x22, 0x52, 0x81, 0x4c, 0x22, 0x99, 0xf7, 0x15, 
	0x58, 0x2b, 0x11, 0x52, 0x84, 0xc0, 0x22, 0x61, 0x98, 0xb8, 0xc6, 0xc0, 
	0x18, 0x9d, 0x60, 0x7d, 0x46, 0x0e, 0x98, 0x3b, 0x16, 0xba, 0xcd, 0x81, 
	0x31, 0xb2, 0x70, 0x76, 0xf4, 0x5e, 0x81, 0x75, 0xcd, 0xf8, 0x16, 0x7d, 
	0x06, 0xd6, 0xeb, 0x44, 0xc4, 0x3a, 0xdb, 0x9e, 0x9e, 0x8c, 0x89, 0x64, 
	0xe3, 0xac, 0x0c, 0xd6, 0x30, 0xfa, 0x04, 0xda, 0x8a, 0xde, 0xad, 0xb9, 
	0x28, 0xee, 0xb6, 0x14, 0xbd, 0x5b, 0x09, 0xe4, 0x42, 0x47, 0x92, 0x7d, 
	0x24, 0x48, 0xe8, 0x9a, 0x03, 0x63, 0x74, 0x8a, 0xcb, 0x4f, 0xef, 0x0f, 
	0x03, 0xec, 0xac, 0x30, 0xa6, 0x77, 0x3b, 0xaa, 0xd2, 0xf7, 0xd5, 0x7f, 
	0x0c, 0xed, 0x94, 0x24, 0x5b, 0x9a, 0xea, 0xfa, 0xb5, 0x84, 0x22, 0x50, 
	0x69, 0xc1, 0xfc, 0x8f, 0x16, 0xac, 0x7a, 0x0b, 0x7f, 0x1a, 0x60, 0xce, 
	0x36, 0xb7, 0x0f, 0x47, 0x3d, 0x00, 0x9b, 0xf1, 0x0d, 0x49, 0x38, 0x49, 
	0x99, 0xe0, 0x9a, 0xde, 0xc2, 0x55, 0xa8, 0xda, 0x5c, 0xab, 0xde, 0xdc, 
	0x1a, 0xac, 0x15, 0x79, 0xc0, 0xe6, 0xbc, 0xbf, 0x0c, 0xe8, 0xfa, 0xfc, 
	0x0d, 0x8d, 0x84, 0xa4, 0xe8, 0x0b, 0xb0, 0x24, 0xe3, 0xdb, 0x1a, 0x4b, 
	0xe6, 0xce, 0xb2, 0x81, 0x75, 0x00, 0x7d, 0x07, 0xa7, 0xd9, 0xdf, 0x75, 
	0x92, 0xdb, 0x55, 0xb0, 0x39, 0x87, 0xc4, 0xc2, 0xc6, 0x65, 0x03, 0xdb, 
	0xb2, 0xe2, 0xea, 0x23, 0x30, 0xc9, 0xe6, 0x56, 0x13, 0xdb, 0xd3, 0xae, 
	0xce, 0x9e, 0x6d, 0x6e, 0x97, 0x0d, 0x9c, 0xc1, 0x19, 0x2b, 0xcf, 0xc2, 
	0x56, 0xb5, 0x75, 0xa2, 0xe3, 0x3a, 0x30, 0x6f, 0x81, 0x19, 0xab, 0xad, 
	0x67, 0xc3, 0x49, 0x40, 0x79, 0x88, 0xa9, 0x8c, 0xf6, 0x99, 0x6b, 0xf6, 
	0x0b, 0x1a, 0xdf, 0xd0, 0x24, 0x48, 0x49, 0x4a, 0x33, 0x81, 0xb8, 0x08, 
	0xe9, 0x3d, 0x02, 0x65, 0x30, 0xfa, 0x12, 0xda, 0x2a, 0x25, 0xe9, 0x4e, 
	0xe9, 0x96, 0xfb, 0x53, 0x5b, 0x27, 0x04, 0x1a, 0xc2, 0x45, 0xe8, 0x5d, 
	0xa3, 0xcc, 0x63, 0xa3, 0x86, 0x70, 0xaa, 0x76, 0x4a, 0xd2, 0x4d, 0x4a, 
	0xc3, 0xf5, 0xcd, 0xde, 0xb5, 0x06, 0xe6, 0xc8, 0x9a, 0x37, 0x1d, 0x03, 
	0xdb, 0x07, 0x7c, 0xbe, 0xf7, 0x2e, 0xa1, 0xf7, 0x4c, 0x28, 0xc5, 0xe4, 
	0x75, 0x6e, 0x23, 0x7a, 0x02, 0x9d, 0x58, 0x37, 0xab, 0x5c, 0x63, 0x60, 
	0x1e, 0x24, 0xab, 0x0c, 0x80, 0xcb, 0x04, 0xcf, 0x81, 0x7e, 0x8e, 0xab, 
	0x42, 0x3e, 0xef, 0x37, 0x38, 0x3b, 0x20, 0x4a, 0x0a, 0xae, 0x32, 0xa7, 
	0x5a, 0x91, 0xd8, 0x90, 0xe8, 0x78, 0xde, 0x1c, 0xaf, 0x32, 0x36, 0xdf, 
	0xc7, 0x78, 0x06, 0xbd, 0x25, 0x25, 0x51, 0xfa, 0x7b, 0x49, 0xf8, 0xb7, 
	0x01, 0xfd, 0x12, 0x29, 0x08, 0xbf, 0x3f, 0x08, 0x68, 0x68, 0x01, 0x1f, 
	0xeb, 0x72, 0xf5, 0xa4, 0x71, 0x40, 0x93, 0x37, 0x8c, 0x6f, 0xdf, 0x91, 
	0xb5, 0xb4, 0xa6, 0x79, 0xbf, 0x35, 0x43, 0xe8, 0xef, 0x64, 0xca, 0x62, 
	0xba, 0x56, 0x74, 0x23, 0x78, 0xa8, 0x0a, 0xe1, 0x7b, 0x39, 0x1a, 0xe4, 
	0xa0, 0x37, 0x84, 0x5e, 0xad, 0x3c, 0x6a, 0x43, 0xf3, 0xe7, 0x9f, 0x9c, 
	0x06, 0x3a, 0x85, 0xee, 0xc2, 0x7f, 0x86, 0x67, 0x0b, 0x7f, 0xe1, 0x18, 
	0xde, 0x04, 0xfa, 0x2f, 0x04, 0x67, 0xa9, 0x48, 0x2a, 0xff, 0x52, 0xfe, 
	0x67, 0x33, 0xbc, 0x8f, 0xe0, 0xec, 0x70, 0x21, 0x1f, 0xc3, 0x7b, 0x0a, 
	0xe8, 0x4a, 0xf0, 0xd7, 0x2c, 0x89, 0x17, 0x94, 0x84, 0x1f, 0x58, 0x67, 
	0x02, 0xe7, 0xb5, 0x4b, 0x85, 0x6e, 0x2e, 0x74, 0x88, 0x94, 0x11, 0xa3, 
	0xa1, 0xbe, 0xd8, 0xc5, 0xe5, 0xe7, 0x93, 0x4b, 0x68, 0x17, 0x93, 0x9c, 
	0x40, 0x6b, 0xf6, 0xfc, 0xc7, 0x57, 0xbe, 0xd3, 0x40, 0x36, 0x74, 0x82, 
	0x97, 0xc1, 0xb5, 0x7f, 0xf5, 0x8b, 0x63, 0xa0, 0x33, 0xb0, 0x5f, 0xae, 
	0xb0, 0x3f, 0xbb, 0x5a, 0xce, 0xe6, 0xcf, 0x7d, 0xa7, 0x89, 0xba, 0x60, 
	0x2d, 0xfc, 0xd9, 0xc2, 0x31, 0xa7, 0x5f, 0x83, 0x15, 0xbc, 0x65, 0x31, 
	0x1a, 0x82, 0x95, 0xbd, 0x09, 0xd4, 0xd3, 0xed, 0x94, 0x0f, 0xf9, 0xa2, 
	0x9f, 0xaf, 0x77, 0xf9, 0x5a, 0xa6, 0xff, 0x18, 0xd0, 0xc9, 0xad, 0x0f, 
	0xd1, 0xb7, 0xe5, 0x51, 0xa1, 0xf3, 0xca, 0x4e, 0x94, 0xdb, 0x76, 0xf1, 
	0x71, 0x1d, 0x2c, 0xe6, 0xf8, 0x06, 0xda, 0xb9, 0xd9, 0x08, 0xd5, 0x9c, 
	0xcf, 0xef, 0x9c, 0xdf, 0xb3, 0x0d, 0x9a, 0x28, 0x57, 0xb6, 0x24, 0xaa, 
	0x19, 0x53, 0x12, 0xd5, 0xc5, 0x47, 0x3f, 0x80, 0x5d, 0xd1, 0x11, 0x7d, 
	0xaa, 0x93, 0x8e, 0xed, 0xb8, 0x70, 0x8f, 0x03, 0x79, 0x85, 0xf9, 0xe7, 
	0xbf, 0x3e, 0xca, 0x37, 0x3b, 0x9c, 0x30, 0x9e, 0xd2, 0x84, 0x93, 0x68, 
	0xb2, 0xa5, 0x7c, 0x42, 0x24, 0xbb, 0x24, 0x92, 0xdd, 0xb4, 0xf5, 0xaf, 
	0xe0, 0xd3, 0x7f, 0x03, 0x00, 0x00, 0xff, 0xff, 0x50, 0xfd, 0xde, 0xcf, 
	0x17, 0x07, 0x00, 0x00, 
}

// Reference imports to suppress errors if they are not otherwise used.
var _ context.Context
var _ grpc.ClientConn

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
const _ = grpc.SupportPackageIsVersion4

// SwimClient is the client API for Swim service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://godoc.org/google.golang.org/grpc#ClientConn.NewStream.
type SwimClient interface {
	Send(ctx context.Context, in *Envelope, opts ...grpc.CallOption) (*SendReply, error)
}

type swimClient struct {
	cc *grpc.ClientConn
}

func NewSwimClient(cc *grpc.ClientConn) SwimClient {
	return &swimClient{cc}
}

func (c *swimClient) Send(ctx context.Context, in *Envelope, opts ...grpc.CallOption) (*SendReply, error) {
	out := new(SendReply)
	err := c.cc.Invoke(ctx, "/api.Swim/Send", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SwimServer is the server API for Swim service.
type SwimServer interface {
	Send(context.Context, *Envelope) (*SendReply, error)
}

// UnimplementedSwimServer can be embedded to have forward compatible implementations.
type UnimplementedSwimServer struct {
}

func (*UnimplementedSwimServer) Send(ctx context.Context, req *Envelope) (*SendReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Send not implemented")
}

func RegisterSwimServer(s *grpc.Server, srv SwimServer) {
	s.RegisterService(&_Swim_serviceDesc, srv)
}

func _Swim_Send_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Envelope)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SwimServer).Send(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/api.Swim/Send",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SwimServer).Send(ctx, req.(*Envelope))
	}
	return interceptor(ctx, in, info, handler)
}

var _Swim_serviceDesc = grpc.ServiceDesc{
	ServiceName: "api.Swim",
	HandlerType: (*SwimServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Send",
			Handler:    _Swim_Send_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/swim.proto",
}

// MemberdClient is the client API for Memberd service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://godoc.org/google.golang.org/grpc#ClientConn.NewStream.
type MemberdClient interface {
	Members(ctx context.Context, in *MembersRequest, opts ...grpc.CallOption) (*MembersResponse, error)
	Health(ctx context.Context, in *HealthRequest, opts ...grpc.CallOption) (*HealthResponse, error)
	Monitor(ctx context.Context, in *MonitorRequest, opts ...grpc.CallOption) (*MonitorResponse, error)
	ConfirmDead(ctx context.Context, in *ConfirmDeadRequest, opts ...grpc.CallOption) (*ConfirmDeadResponse, error)
}

type memberdClient struct {
	cc *grpc.ClientConn
}

func NewMemberdClient(cc *grpc.ClientConn) MemberdClient {
	return &memberdClient{cc}
}

func (c *memberdClient) Members(ctx context.Context, in *MembersRequest, opts ...grpc.CallOption) (*MembersResponse, error) {
	out := new(MembersResponse)
	err := c.cc.Invoke(ctx, "/api.Memberd/Members", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memberdClient) Health(ctx context.Context, in *HealthRequest, opts ...grpc.CallOption) (*HealthResponse, error) {
	out := new(HealthResponse)
	err := c.cc.Invoke(ctx, "/api.Memberd/Health", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memberdClient) Monitor(ctx context.Context, in *MonitorRequest, opts ...grpc.CallOption) (*MonitorResponse, error) {
	out := new(MonitorResponse)
	err := c.cc.Invoke(ctx, "/api.Memberd/Monitor", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memberdClient) ConfirmDead(ctx context.Context, in *ConfirmDeadRequest, opts ...grpc.CallOption) (*ConfirmDeadResponse, error) {
	out := new(ConfirmDeadResponse)
	err := c.cc.Invoke(ctx, "/api.Memberd/ConfirmDead", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MemberdServer is the server API for Memberd service.
type MemberdServer interface {
	Members(context.Context, *MembersRequest) (*MembersResponse, error)
	Health(context.Context, *HealthRequest) (*HealthResponse, error)
	Monitor(context.Context, *MonitorRequest) (*MonitorResponse, error)
	ConfirmDead(context.Context, *ConfirmDeadRequest) (*ConfirmDeadResponse, error)
}

// UnimplementedMemberdServer can be embedded to have forward compatible implementations.
type UnimplementedMemberdServer struct {
}

func (*UnimplementedMemberdServer) Members(ctx context.Context, req *MembersRequest) (*MembersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Members not implemented")
}
func (*UnimplementedMemberdServer) Health(ctx context.Context, req *HealthRequest) (*HealthResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Health not implemented")
}
func (*UnimplementedMemberdServer) Monitor(ctx context.Context, req *MonitorRequest) (*MonitorResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Monitor not implemented")
}
func (*UnimplementedMemberdServer) ConfirmDead(ctx context.Context, req *ConfirmDeadRequest) (*ConfirmDeadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ConfirmDead not implemented")
}

func RegisterMemberdServer(s *grpc.Server, srv MemberdServer) {
	s.RegisterService(&_Memberd_serviceDesc, srv)
}

func _Memberd_Members_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MembersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MemberdServer).Members(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/api.Memberd/Members",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MemberdServer).Members(ctx, req.(*MembersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Memberd_Health_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(HealthRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MemberdServer).Health(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/api.Memberd/Health",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MemberdServer).Health(ctx, req.(*HealthRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Memberd_Monitor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MonitorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MemberdServer).Monitor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/api.Memberd/Monitor",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MemberdServer).Monitor(ctx, req.(*MonitorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Memberd_ConfirmDead_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConfirmDeadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MemberdServer).ConfirmDead(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/api.Memberd/ConfirmDead",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MemberdServer).ConfirmDead(ctx, req.(*ConfirmDeadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _Memberd_serviceDesc = grpc.ServiceDesc{
	ServiceName: "api.Memberd",
	HandlerType: (*MemberdServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Members",
			Handler:    _Memberd_Members_Handler,
		},
		{
			MethodName: "Health",
			Handler:    _Memberd_Health_Handler,
		},
		{
			MethodName: "Monitor",
			Handler:    _Memberd_Monitor_Handler,
		},
		{
			MethodName: "ConfirmDead",
			Handler:    _Memberd_ConfirmDead_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/swim.proto",
}
