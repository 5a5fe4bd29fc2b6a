// Package proto holds the service definitions. The Go bindings are
// generated into gen/proto (go generate ./proto).
package proto

//go:generate protoc --proto_path=. --go_out=../gen/proto --go_opt=paths=source_relative --go-grpc_out=../gen/proto --go-grpc_opt=paths=source_relative docpipe/v1/pipeline.proto
