package ports

// OutputVerifier checks declared outputs after a successful generation. The
// result is advisory only: staleness detection never depends on it.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type OutputVerifier interface {
	// Verify returns the subset of paths that do not exist.
	Verify(paths []string) ([]string, error)
}
