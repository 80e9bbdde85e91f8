package metrics

import (
	"context"
	"errors"
	"sync"
	"testing"

	"google.golang.org/grpc"
)

// testExporter is shared by all tests to avoid duplicate Prometheus
// metric registration errors.
var (
	testExporter     *PrometheusExporter
	testExporterOnce sync.Once
)

func getTestExporter(collector *Collector) *PrometheusExporter {
	testExporterOnce.Do(func() {
		testExporter = NewPrometheusExporter(collector)
	})
	return testExporter
}

func okHandler(ctx context.Context, req interface{}) (interface{}, error) {
	return "response", nil
}

func callInterceptor(t *testing.T, interceptor grpc.UnaryServerInterceptor, method string, handler grpc.UnaryHandler) error {
	t.Helper()
	info := &grpc.UnaryServerInfo{FullMethod: method}
	_, err := interceptor(context.Background(), "request", info, handler)
	return err
}

func TestUnaryServerInterceptor_RecordsRequest(t *testing.T) {
	collector := NewCollector()
	interceptor := UnaryServerInterceptor(collector, nil)

	if err := callInterceptor(t, interceptor, "/monban.v1.Access/Resolve", okHandler); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rpcMetrics := collector.GetRPCMetrics()
	if count := rpcMetrics.RequestCounts["/monban.v1.Access/Resolve"]; count != 1 {
		t.Errorf("expected request count 1, got %d", count)
	}
	if _, ok := rpcMetrics.TotalDurationSeconds["/monban.v1.Access/Resolve"]; !ok {
		t.Error("expected duration to be recorded")
	}
}

func TestUnaryServerInterceptor_RecordsError(t *testing.T) {
	collector := NewCollector()
	interceptor := UnaryServerInterceptor(collector, nil)

	expectedErr := errors.New("resolve failed")
	failing := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, expectedErr
	}

	err := callInterceptor(t, interceptor, "/monban.v1.Access/ResolveMatrix", failing)
	if err != expectedErr {
		t.Fatalf("expected error %v, got %v", expectedErr, err)
	}

	rpcMetrics := collector.GetRPCMetrics()
	if count := rpcMetrics.ErrorCounts["/monban.v1.Access/ResolveMatrix"]; count != 1 {
		t.Errorf("expected error count 1, got %d", count)
	}
}

func TestUnaryServerInterceptor_SuccessNotCountedAsError(t *testing.T) {
	collector := NewCollector()
	interceptor := UnaryServerInterceptor(collector, nil)

	if err := callInterceptor(t, interceptor, "/monban.v1.Access/ListGroups", okHandler); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rpcMetrics := collector.GetRPCMetrics()
	if count := rpcMetrics.ErrorCounts["/monban.v1.Access/ListGroups"]; count != 0 {
		t.Errorf("expected no error count, got %d", count)
	}
}

func TestUnaryServerInterceptor_MultipleRequests(t *testing.T) {
	collector := NewCollector()
	interceptor := UnaryServerInterceptor(collector, nil)

	for i := 0; i < 5; i++ {
		if err := callInterceptor(t, interceptor, "/monban.v1.Access/ReadRules", okHandler); err != nil {
			t.Fatalf("unexpected error on call %d: %v", i, err)
		}
	}

	rpcMetrics := collector.GetRPCMetrics()
	if count := rpcMetrics.RequestCounts["/monban.v1.Access/ReadRules"]; count != 5 {
		t.Errorf("expected request count 5, got %d", count)
	}
}

func TestUnaryServerInterceptor_WithPrometheusExporter(t *testing.T) {
	collector := NewCollector()
	exporter := getTestExporter(collector)
	interceptor := UnaryServerInterceptor(collector, exporter)

	if err := callInterceptor(t, interceptor, "/monban.v1.Access/WriteRules", okHandler); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rpcMetrics := collector.GetRPCMetrics()
	if count := rpcMetrics.RequestCounts["/monban.v1.Access/WriteRules"]; count != 1 {
		t.Errorf("expected request count 1, got %d", count)
	}
}
