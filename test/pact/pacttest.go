//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "petcare-api"
	ConsumerName = "petcare-mobile"

	StateOwnerExists = "usuario 1 exists"
	StatePetExists   = "pet 1 owned by usuario 1 exists"
	StatePetMissing  = "no pet with id 404"
)

// Every provider state starts from empty repositories, so the first records get ID 1.
const (
	ExistingUsuarioID int64 = 1
	ExistingPetID     int64 = 1
	MissingPetID      int64 = 404
)

const (
	ExamplePetNome = "Rex"
	ExamplePetRaca = "Labrador"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the mobile consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExamplePetPayload is the create request the consumer sends.
func ExamplePetPayload() map[string]any {
	return map[string]any{
		"nome":      ExamplePetNome,
		"raca":      ExamplePetRaca,
		"idade":     3,
		"usuarioId": ExistingUsuarioID,
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
