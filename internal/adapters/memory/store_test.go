package memory_test

import (
	"testing"

	"github.com/wyre-technology/syncro-mcp/internal/adapters/memory"
	"github.com/wyre-technology/syncro-mcp/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunSessionStoreContract(t, memory.New())
}
