package qdrant

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/breezykermo/qdrant-example-app/vectordb"
)

// QdrantContainer represents a Qdrant container for testing
type QdrantContainer struct {
	testcontainers.Container
	Host string
	Port string
}

// setupQdrantContainer sets up a Qdrant container for testing
func setupQdrantContainer(ctx context.Context) (*QdrantContainer, error) {
	port, err := getFreePort()
	if err != nil {
		return nil, fmt.Errorf("could not get free port: %w", err)
	}

	portStr := fmt.Sprintf("%d", port)
	portBindings := nat.PortMap{
		"6334/tcp": []nat.PortBinding{{HostPort: portStr}},
	}

	req := testcontainers.ContainerRequest{
		Image: "qdrant/qdrant:v1.12.4",
		Env: map[string]string{
			"QDRANT__SERVICE__GRPC_PORT": "6334",
		},
		ExposedPorts: []string{"6334/tcp"},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = portBindings
		},
		WaitingFor: wait.ForListeningPort("6334/tcp").WithStartupTimeout(60 * time.Second),
	}

	qc, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start qdrant container: %w", err)
	}

	host, err := qc.Host(ctx)
	if err != nil {
		_ = qc.Terminate(ctx)
		return nil, fmt.Errorf("failed to get host: %w", err)
	}

	mappedPort, err := qc.MappedPort(ctx, "6334")
	if err != nil {
		_ = qc.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}
	portStr = mappedPort.Port()

	if err := waitForQdrantReady(host, portStr, 30*time.Second); err != nil {
		_ = qc.Terminate(ctx)
		return nil, fmt.Errorf("qdrant container not ready: %w", err)
	}

	return &QdrantContainer{
		Container: qc,
		Host:      host,
		Port:      portStr,
	}, nil
}

// getFreePort gets a free port from the OS
func getFreePort() (int, error) {
	addr, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer addr.Close()

	return addr.Addr().(*net.TCPAddr).Port, nil
}

// waitForQdrantReady attempts to connect to Qdrant until it's ready or times out
func waitForQdrantReady(host, port string, timeout time.Duration) error {
	startTime := time.Now()
	for {
		if time.Since(startTime) > timeout {
			return fmt.Errorf("timed out waiting for Qdrant to be ready after %s", timeout)
		}

		conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, port), 2*time.Second)
		if err == nil {
			_ = conn.Close()
			// Additional wait to ensure the service is fully ready
			time.Sleep(2 * time.Second)
			return nil
		}

		time.Sleep(500 * time.Millisecond)
	}
}

func testPoint(id uint64, tenant int64, title string, dense []float32) vectordb.Point {
	return vectordb.Point{
		ID:     id,
		Dense:  dense,
		Sparse: vectordb.SparseVector{Indices: []uint32{uint32(id)}, Values: []float32{1}},
		LateInteraction: vectordb.MultiVector{
			dense,
			{dense[0], dense[1], dense[2], dense[3] + 0.1},
		},
		Payload: map[string]any{
			vectordb.PayloadTitle:    title,
			vectordb.PayloadAbstract: "abstract for " + title,
			vectordb.PayloadTenant:   tenant,
		},
	}
}

// TestQdrantHybridSearch exercises provisioning, upsert, and hybrid
// querying against a real Qdrant instance.
func TestQdrantHybridSearch(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	containerInstance, err := setupQdrantContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	t.Logf("Using Qdrant on %s:%s", containerInstance.Host, containerInstance.Port)

	portNum, err := strconv.Atoi(containerInstance.Port)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Host = containerInstance.Host
	cfg.Port = portNum
	cfg.Collection = "hybrid_test"
	cfg.UpsertChunkSize = 2

	client, err := NewClient(Params{Config: cfg})
	require.NoError(t, err)
	defer client.Close()

	schema := vectordb.Schema{
		Name:                cfg.Collection,
		DenseSize:           4,
		LateInteractionSize: 4,
		ShardNumber:         1,
		ReplicationFactor:   1,
	}

	t.Run("EnsureCollection", func(t *testing.T) {
		require.NoError(t, client.EnsureCollection(ctx, schema))

		// Second call is a no-op.
		require.NoError(t, client.EnsureCollection(ctx, schema))
	})

	t.Run("UpsertAndQuery", func(t *testing.T) {
		points := []vectordb.Point{
			testPoint(0, 1, "blue whales", []float32{0.9, 0.1, 0.0, 0.0}),
			testPoint(1, 2, "humpback whales", []float32{0.8, 0.2, 0.0, 0.0}),
			testPoint(2, 1, "stock markets", []float32{0.0, 0.0, 0.9, 0.1}),
			testPoint(3, 1, "bond markets", []float32{0.0, 0.1, 0.8, 0.1}),
			testPoint(4, 2, "coral reefs", []float32{0.7, 0.3, 0.0, 0.0}),
		}
		require.NoError(t, client.Upsert(ctx, cfg.Collection, points))

		query := vectordb.HybridQuery{
			CollectionName:  cfg.Collection,
			TenantID:        1,
			Dense:           []float32{0.85, 0.15, 0.0, 0.0},
			Sparse:          vectordb.SparseVector{Indices: []uint32{0}, Values: []float32{1}},
			LateInteraction: vectordb.MultiVector{{0.85, 0.15, 0.0, 0.0}},
			PrefetchLimit:   20,
			Limit:           10,
		}

		results, err := client.Query(ctx, query)
		require.NoError(t, err)
		require.NotEmpty(t, results)

		// Only tenant 1 documents come back, payload included.
		for _, r := range results {
			tenant, ok := r.Payload[vectordb.PayloadTenant].(int64)
			require.True(t, ok)
			assert.Equal(t, int64(1), tenant)
			assert.NotEmpty(t, r.Payload[vectordb.PayloadTitle])
		}

		// The whale document owned by tenant 1 ranks first.
		assert.Equal(t, uint64(0), results[0].ID)
	})

	t.Run("QueryUnknownTenantIsEmpty", func(t *testing.T) {
		query := vectordb.HybridQuery{
			CollectionName:  cfg.Collection,
			TenantID:        99,
			Dense:           []float32{0.5, 0.5, 0.0, 0.0},
			Sparse:          vectordb.SparseVector{Indices: []uint32{0}, Values: []float32{1}},
			LateInteraction: vectordb.MultiVector{{0.5, 0.5, 0.0, 0.0}},
			PrefetchLimit:   20,
			Limit:           10,
		}

		results, err := client.Query(ctx, query)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
