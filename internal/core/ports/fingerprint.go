package ports

// Fingerprinter resolves the environment fingerprint included in cache
// keys when the configuration does not set one explicitly.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprint.go -destination=mocks/mock_fingerprint.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns an opaque string identifying the installation
	// that will run the given command.
	Fingerprint(argv []string) (string, error)
}
